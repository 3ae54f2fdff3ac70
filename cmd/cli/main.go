package main

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"helpdesk/internal/scim"
)

var (
	apiBaseURL string
	scimToken  string
)

var apiServiceBase = func() *resty.Client {
	return resty.New().
		SetBaseURL(apiBaseURL + "/api/scim/v2").
		SetHeader("Accept", "application/json").
		SetAuthToken(scimToken).
		SetError(&scim.Error{}).
		OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				return fmt.Errorf("%s", resp.Error().(*scim.Error).Detail)
			}

			return nil
		})
}

var rootCmd = &cobra.Command{
	Use:   "helpdesk",
	Short: "Helpdesk provisioning CLI",
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage provisioned users",
}

var userListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List provisioned users",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := apiServiceBase().R().SetResult(&scim.ListResponse{})
		if len(args) == 1 {
			req.SetQueryParam("filter", args[0])
		}

		resp, err := req.Get("/Users")
		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		list := resp.Result().(*scim.ListResponse)

		fmt.Println("Total:", list.TotalResults)
		for _, u := range list.Resources {
			fmt.Printf("  %s  %-30s  active=%v\n", u.ID, u.UserName, u.Active)
		}
	},
}

var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Provision a new user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		resp, err := apiServiceBase().R().
			SetBody(scim.UserRequest{
				Schemas:  []string{scim.SchemaUser},
				UserName: email,
				Emails:   []scim.Email{{Value: email, Primary: true}},
			}).
			SetResult(&scim.User{}).
			Post("/Users")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		user := resp.Result().(*scim.User)

		fmt.Println("User ID :", user.ID)
		fmt.Println("Email   :", user.UserName)
		fmt.Println("Active  :", user.Active)
	},
}

var userDeactivateCmd = &cobra.Command{
	Use:   "deactivate <user_id>",
	Short: "Deactivate a provisioned user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, err := apiServiceBase().R().Delete("/Users/" + args[0])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		fmt.Println("User deactivated")
	},
}

func main() {
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userDeactivateCmd)
	rootCmd.AddCommand(userCmd)

	rootCmd.PersistentFlags().StringVarP(&apiBaseURL, "url", "u", "http://localhost:3000", "API base URL")
	rootCmd.PersistentFlags().StringVarP(&scimToken, "token", "t", "", "Provisioning bearer token")
	rootCmd.MarkPersistentFlagRequired("token")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
