package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/pbanos/bayesnet"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/estimate/json"
	"github.com/pbanos/bayesnet/metrics"
	"github.com/pbanos/bayesnet/query"
	"github.com/spf13/cobra"
)

const defaultSampleCount = 100000

type inferCmdConfig struct {
	*rootCmdConfig
	networkInput string
	variables    []string
	evidence     []string
	algorithm    string
	samples      int
	seed         uint64
	storeURL     string
	jsonOutput   bool
	metricsFile  string
	ctx          context.Context
	cancelFunc   context.CancelFunc
}

func inferCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &inferCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Estimate a posterior distribution",
		Long:  `Estimate the distribution of some variables of a bayesian network given the values of others by sampling the network`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer config.ContextCancelFunc()()
			algorithm, err := bayesnet.ParseAlgorithm(config.algorithm)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			q, err := query.Parse(config.variables, config.evidence)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			n, err := loadNetwork(config.Context(), config.networkInput, config.logger)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if !cmd.Flags().Changed("seed") {
				config.seed = rand.Uint64()
			}
			config.Logf("Sampling with seed %d", config.seed)
			sampler := bayesnet.NewSampler(n, rand.NewPCG(config.seed, config.seed))
			sampler.Logger = config.logger
			config.Logf("Estimating %v with %s over %d samples...", q, algorithm, config.samples)
			e, err := sampler.Infer(algorithm, q, config.samples)
			if err != nil {
				fmt.Fprintf(os.Stderr, "estimating %v: %v\n", q, err)
				os.Exit(4)
			}
			config.Logf("Done")
			if config.metricsFile != "" {
				err = metrics.WriteToTextfile(config.metricsFile)
				if err != nil {
					fmt.Fprintf(os.Stderr, "writing metrics to %s: %v\n", config.metricsFile, err)
					os.Exit(5)
				}
			}
			if config.storeURL != "" {
				err = config.storeEstimate(e)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
			}
			if config.jsonOutput {
				err = json.WriteEstimate(os.Stdout, e)
			} else {
				err = writeReport(os.Stdout, q, e)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing estimate: %v\n", err)
				os.Exit(7)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.networkInput), "network", "n", "", "path to a YAML (.yml, .yaml), JSON (.json) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the network to sample (required)")
	cmd.PersistentFlags().StringSliceVarP(&(config.variables), "query", "q", nil, "name of a variable to estimate the distribution of, can be repeated")
	cmd.PersistentFlags().StringSliceVarP(&(config.evidence), "evidence", "e", nil, "observed value of a variable as name=true or name=false, can be repeated")
	cmd.PersistentFlags().StringVarP(&(config.algorithm), "algorithm", "a", bayesnet.LikelihoodWeighting.String(), "sampling algorithm: direct, rejection or likelihood")
	cmd.PersistentFlags().IntVarP(&(config.samples), "samples", "s", defaultSampleCount, "number of samples to draw")
	cmd.PersistentFlags().Uint64Var(&(config.seed), "seed", 0, "seed for the random source (defaults to a random seed)")
	cmd.PersistentFlags().StringVar(&(config.storeURL), "store", "", "redis://host:port/prefix or mongodb:// URL of a store to save the estimate on")
	cmd.PersistentFlags().BoolVar(&(config.jsonOutput), "json", false, "print the estimate as JSON")
	cmd.PersistentFlags().StringVar(&(config.metricsFile), "metrics-file", "", "path to a file to write sampling metrics to in the prometheus text format")
	return cmd
}

func (icc *inferCmdConfig) Validate() error {
	if icc.networkInput == "" {
		return fmt.Errorf("required network flag was not set")
	}
	if icc.samples <= 0 {
		return fmt.Errorf("samples flag must be positive, got %d", icc.samples)
	}
	return nil
}

func (icc *inferCmdConfig) storeEstimate(e *estimate.Estimate) error {
	store, err := openStore(icc.Context(), icc.storeURL, icc.logger)
	if err != nil {
		return err
	}
	defer store.Close(icc.Context())
	err = store.Create(icc.Context(), e)
	if err != nil {
		return fmt.Errorf("storing estimate: %v", err)
	}
	fmt.Fprintf(os.Stderr, "estimate stored with id %s\n", e.ID)
	return nil
}

func (icc *inferCmdConfig) Context() context.Context {
	icc.setContextAndCancelFunc()
	return icc.ctx
}

func (icc *inferCmdConfig) ContextCancelFunc() context.CancelFunc {
	icc.setContextAndCancelFunc()
	return icc.cancelFunc
}

func (icc *inferCmdConfig) setContextAndCancelFunc() {
	if icc.ctx == nil {
		icc.ctx, icc.cancelFunc = context.WithCancel(context.Background())
	}
}

/*
writeReport takes a writer, a query and its estimate and writes the
joint distribution of the query variables followed by the marginal
probability of each of them being true.
*/
func writeReport(w io.Writer, q *query.Query, e *estimate.Estimate) error {
	_, err := fmt.Fprintf(w, "%v\n%v", q, e)
	if err != nil {
		return err
	}
	if e.Algorithm == bayesnet.LikelihoodWeighting.String() {
		_, err = fmt.Fprintf(w, "effective sample size: %.1f\n", e.EffectiveSamples)
		if err != nil {
			return err
		}
	}
	for _, v := range e.Variables {
		p, err := e.Marginal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "P(%s=true) = %.6f\n", v, p)
		if err != nil {
			return err
		}
	}
	return nil
}
