// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZeyadKm/airlit/internal/sources"
	"github.com/ZeyadKm/airlit/pkg/types"
)

const defaultTimeout = 30 * time.Second

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Retrieve and deduplicate recent air pollution articles",
	Long: `Fetch queries PubMed and Crossref for air pollution articles published
within the lookback window and prints the deduplicated list. Articles are
matched across sources by DOI or normalized title; the first occurrence
wins.`,
	RunE: runFetch,
}

func init() {
	addFetchFlags(fetchCmd)
	fetchCmd.Flags().Bool("json", false, "output articles as JSON")
	fetchCmd.Flags().Bool("yaml", false, "output articles as YAML")

	rootCmd.AddCommand(fetchCmd)
}

// addFetchFlags registers the retrieval flags shared by fetch and review.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("days", 0, "number of days back to query (default 7)")
	cmd.Flags().Int("max-pubmed", 0, "maximum PubMed articles to include (default 8)")
	cmd.Flags().Int("max-crossref", 0, "maximum Crossref articles to include (default 8)")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	cmd.Flags().String("contact-email", "", "contact address sent to upstream APIs")
}

// fetchConfig resolves retrieval settings: flags first, then config file,
// then the secrets directory for the contact address.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	days, _ := cmd.Flags().GetInt("days")
	if days == 0 {
		days = viper.GetInt("fetch.days")
	}
	maxPubmed, _ := cmd.Flags().GetInt("max-pubmed")
	if maxPubmed == 0 {
		maxPubmed = viper.GetInt("fetch.max_pubmed")
	}
	maxCrossref, _ := cmd.Flags().GetInt("max-crossref")
	if maxCrossref == 0 {
		maxCrossref = viper.GetInt("fetch.max_crossref")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	contact, _ := cmd.Flags().GetString("contact-email")
	if contact == "" {
		contact = viper.GetString("fetch.contact_email")
	}
	if contact == "" {
		contact = secretDefault("contact-email", "")
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: sources.UserAgent(version, contact),
		},
		Days:         days,
		MaxPubMed:    maxPubmed,
		MaxCrossref:  maxCrossref,
		ContactEmail: contact,
	}
}

// defaultSources returns the configured bibliographic sources in
// deduplication precedence order: PubMed results win over Crossref.
func defaultSources(cfg types.FetchConfig) []sources.Source {
	client := &http.Client{Timeout: cfg.Timeout}
	return []sources.Source{
		&sources.PubMedSource{Client: client},
		&sources.CrossrefSource{Client: client},
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	articles, err := sources.Collect(cmd.Context(), defaultSources(cfg), cfg)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON && asYAML:
		return fmt.Errorf("choose one of --json or --yaml")
	case asJSON:
		return sources.FormatJSON(articles, os.Stdout)
	case asYAML:
		return sources.FormatYAML(articles, os.Stdout)
	default:
		sources.FormatTable(articles, os.Stdout)
		return nil
	}
}
