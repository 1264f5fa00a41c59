package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/api"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
)

var serviceID string

// serviceCmd represents the service command
var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Run the sample service as a workflow and print its lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.Dial(temporalOptions())
		if err != nil {
			return fmt.Errorf("client error: %w", err)
		}
		defer c.Close()

		ctx := cmd.Context()

		we, err := c.ExecuteWorkflow(
			ctx,
			client.StartWorkflowOptions{
				ID:                    serviceID,
				TaskQueue:             api.TaskQueue,
				WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
			},
			api.ServiceWorkflowName,
			api.DefaultServiceInput(),
		)
		if err != nil {
			return err
		}

		var result api.ServiceResult
		err = we.Get(ctx, &result)
		if err != nil {
			return err
		}

		for _, line := range result.Lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}

		return nil
	},
}

func init() {
	serviceCmd.Flags().StringVarP(&serviceID, "id", "i", "restaurant-service", "Workflow ID")
	rootCmd.AddCommand(serviceCmd)
}
