package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Beep206/CyberVPN-sub013/internal/config"
	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	"github.com/Beep206/CyberVPN-sub013/pkg/adapters/memory"
	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Explain the decision for a snapshot",
	Long:  `Evaluates one state snapshot against the rule table and prints the decision and the rule that produced it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		table, err := loadTable(cmd)
		if err != nil {
			return err
		}

		identityFlag, _ := cmd.Flags().GetString("identity")
		identity, ok := parseIdentityFlag(identityFlag)
		if !ok {
			return fmt.Errorf("invalid --identity %q (want loading|authenticated|unauthenticated)", identityFlag)
		}

		onboardingFlag, _ := cmd.Flags().GetString("onboarding")
		onboarding, ok := parseOnboardingFlag(onboardingFlag)
		if !ok {
			return fmt.Errorf("invalid --onboarding %q (want loading|done|pending)", onboardingFlag)
		}

		quickSetup, _ := cmd.Flags().GetBool("quick-setup")
		path, _ := cmd.Flags().GetString("path")
		uri, _ := cmd.Flags().GetString("deep-link")
		pendingPath, _ := cmd.Flags().GetString("pending")

		snap := domain.Snapshot{
			Identity:       identity,
			Onboarding:     onboarding,
			QuickSetupDone: quickSetup,
			RequestedPath:  path,
		}

		link := domain.NoDeepLink()
		if uri != "" {
			link = deeplink.NewInterpreter(table).Parse(uri)
		}

		store := memory.NewPendingStore()
		if pendingPath != "" {
			_ = store.Set(cmd.Context(), domain.Route{ID: "pending", Path: pendingPath})
		}

		eng := engine.New(cfg.NavPaths())
		decision := engine.NewEvaluator(eng, nil).Evaluate(cmd.Context(), snap, link, store)

		fmt.Printf("decision  %s\n", decision.Kind)
		if decision.Target != "" {
			fmt.Printf("target    %s\n", decision.Target)
		}
		fmt.Printf("rule      %s\n", decision.Rule)
		if decision.ExternalAuth != nil {
			fmt.Printf("callback  provider=%s\n", decision.ExternalAuth.Provider)
		}
		if staged, _ := store.Consume(cmd.Context()); staged != nil {
			fmt.Printf("staged    %s\n", staged.Path)
		}
		return nil
	},
}

func parseIdentityFlag(s string) (domain.IdentityStatus, bool) {
	switch s {
	case "loading", "":
		return domain.IdentityLoading, true
	case "authenticated":
		return domain.IdentityAuthenticated, true
	case "unauthenticated":
		return domain.IdentityUnauthenticated, true
	default:
		return "", false
	}
}

func parseOnboardingFlag(s string) (domain.Onboarding, bool) {
	switch s {
	case "loading", "":
		return domain.OnboardingLoading(), true
	case "done":
		return domain.OnboardingResolved(true), true
	case "pending":
		return domain.OnboardingResolved(false), true
	default:
		return domain.Onboarding{}, false
	}
}

func init() {
	rootCmd.AddCommand(decideCmd)
	decideCmd.Flags().String("identity", "loading", "Identity state: loading|authenticated|unauthenticated")
	decideCmd.Flags().String("onboarding", "loading", "Onboarding state: loading|done|pending")
	decideCmd.Flags().Bool("quick-setup", false, "Quick setup completed")
	decideCmd.Flags().String("path", "/", "Requested path")
	decideCmd.Flags().String("deep-link", "", "Deep-link URI accompanying the request")
	decideCmd.Flags().String("pending", "", "Path of a route staged in the pending store")
}
