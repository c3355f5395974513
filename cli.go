package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"financing-agent/config"
	"financing-agent/domain"
	"financing-agent/repository"
	"financing-agent/service"
)

// offline wires the services the batch commands need.
type offline struct {
	logger  *zap.Logger
	catalog *service.CatalogService
	agent   *service.AgentService
}

func newOffline(agentFile string) (*offline, error) {
	cfg := config.Load()
	if agentFile == "" {
		agentFile = cfg.AgentFile
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	agentCfg, err := config.LoadAgentConfig(agentFile)
	if err != nil {
		return nil, err
	}

	return &offline{
		logger:  logger,
		catalog: service.NewCatalogService(repository.NewCatalogRepository()),
		agent:   service.NewAgentService(agentCfg, logger),
	}, nil
}

func newEvaluateCmd() *cobra.Command {
	var (
		agentFile string
		ids       []int
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the agent against the reference cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := newOffline(agentFile)
			if err != nil {
				return err
			}
			defer o.logger.Sync() //nolint:errcheck

			cases := o.catalog.Cases()
			if len(ids) > 0 {
				cases = o.catalog.CasesByIDs(ids)
			}
			metrics, failures := o.agent.Evaluate(cases)
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"agentConfig": o.agent.Config(),
				"metrics":     metrics,
				"failures":    failures,
			})
		},
	}
	cmd.Flags().StringVar(&agentFile, "agent-config", "", "YAML agent definition")
	cmd.Flags().IntSliceVar(&ids, "cases", nil, "case ids to evaluate (default: all)")
	return cmd
}

func newTrainCmd() *cobra.Command {
	var (
		agentFile string
		trainSize int
	)
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train on the first cases of the catalog and evaluate on the rest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := newOffline(agentFile)
			if err != nil {
				return err
			}
			defer o.logger.Sync() //nolint:errcheck

			if trainSize <= 0 {
				trainSize = config.Load().TrainingSize
			}
			train, test := o.catalog.SplitCases(trainSize)
			session, trainFailures := o.agent.Train(train)
			metrics, testFailures := o.agent.Evaluate(test)

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"training": session,
				"metrics":  metrics,
				"failures": append(trainFailures, testFailures...),
				"state":    o.agent.ExportState(),
			})
		},
	}
	cmd.Flags().StringVar(&agentFile, "agent-config", "", "YAML agent definition")
	cmd.Flags().IntVar(&trainSize, "train-size", 0, "number of cases in the training split")
	return cmd
}

func newCasesCmd() *cobra.Command {
	var (
		deviceType string
		minScore   int
		maxScore   int
	)
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List the reference cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := service.NewCatalogService(repository.NewCatalogRepository())

			var cases []domain.Case
			switch {
			case deviceType != "":
				cases = catalog.CasesByDeviceType(deviceType)
			case cmd.Flags().Changed("min-credit") || cmd.Flags().Changed("max-credit"):
				found, err := catalog.CasesByCreditScore(minScore, maxScore)
				if err != nil {
					return err
				}
				cases = found
			default:
				cases = catalog.Cases()
			}

			out := cmd.OutOrStdout()
			for _, c := range cases {
				fmt.Fprintf(out, "%d\t%s\t%s %s\tcredit %d\toptimal %s\n",
					c.ID, c.Title, c.Device.Brand, c.Device.Model, c.Customer.CreditScore, c.OptimalChoice)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&deviceType, "device-type", "", "filter by device type")
	cmd.Flags().IntVar(&minScore, "min-credit", service.MinCreditScore, "lower credit score bound")
	cmd.Flags().IntVar(&maxScore, "max-credit", service.MaxCreditScore, "upper credit score bound")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
