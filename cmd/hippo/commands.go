package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hippo/internal/bubble"
	"hippo/internal/clock"
	"hippo/internal/minigame"
	"hippo/internal/pet"
	"hippo/internal/shop"
	"hippo/internal/ui"
)

func runUI(cmd *cobra.Command, opts *rootOptions) error {
	return withApp(cmd, opts, true, func(a *app) error {
		program := tea.NewProgram(ui.NewModel(a.store, clock.RealClock{}))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("ui failed: %w", err)
		}
		return nil
	})
}

func newUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive view (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the full-screen stats card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(a *app) error {
				p := a.store.Snapshot()
				if !p.Onboarded() {
					return errNoHippo
				}
				return ui.DisplayStats(p)
			})
		},
	}
}

func newOnboardCmd(opts *rootOptions) *cobra.Command {
	var name, gender, age string
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your hippo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(a *app) error {
				g := pet.Gender(strings.ToLower(gender))
				ag := pet.Age(strings.ToLower(age))
				if err := a.store.CompleteOnboarding(name, g, ag); err != nil {
					return fmt.Errorf("failed to create hippo: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "🦛 %s joined the family!\n", a.store.Snapshot().Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Hippo name (1-20 characters)")
	cmd.Flags().StringVar(&gender, "gender", string(pet.GenderMale), "male or female")
	cmd.Flags().StringVar(&age, "age", string(pet.AgeChild), "child or parent")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print stats, coins, care score and tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(a *app) error {
				p := a.store.Snapshot()
				if !p.Onboarded() {
					return errNoHippo
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderStats(p))
				return nil
			})
		},
	}
}

// Past tense for action output
var actionVerbs = map[pet.Action]string{
	pet.ActionFeed:  "Fed",
	pet.ActionClean: "Cleaned",
	pet.ActionPlay:  "Played with",
	pet.ActionSleep: "Put to bed",
	pet.ActionWater: "Gave water to",
}

func newActionCmds(opts *rootOptions) []*cobra.Command {
	var cmds []*cobra.Command
	for _, action := range pet.Actions {
		cmds = append(cmds, &cobra.Command{
			Use:   string(action),
			Short: strings.ToUpper(string(action[:1])) + string(action[1:]) + " your hippo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, opts, func(a *app) error {
					if !a.store.Onboarded() {
						return errNoHippo
					}
					if !a.store.Perform(action) {
						if action == pet.ActionPlay {
							return errors.New("your hippo is too tired to play")
						}
						return fmt.Errorf("%s refused", action)
					}
					p := a.store.Snapshot()
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s. Status: %s, coins: %d\n",
						actionVerbs[action], p.Name, pet.GetStatusWithLabel(p), p.Coins)
					return nil
				})
			},
		})
	}
	return cmds
}

func newShopCmd(opts *rootOptions) *cobra.Command {
	shopCmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy clothes",
	}

	var age string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(a *app) error {
				listings := a.store.AvailableItems()
				if age != "" {
					ag := shop.Age(strings.ToLower(age))
					if !ag.Valid() {
						return fmt.Errorf("unknown age %q", age)
					}
					listings = shop.FilterForAge(listings, ag)
				}
				p := a.store.Snapshot()
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tITEM\tSLOT\tRARITY\tPRICE\tSTATE")
				for _, l := range listings {
					state := ""
					switch {
					case p.Outfit[l.Category] == l.ID:
						state = "worn"
					case l.Unlocked:
						state = "owned"
					}
					fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%d\t%s\n", l.ID, l.Icon, l.Name, l.Category, l.Rarity, l.Price, state)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nCoins: %d\n", p.Coins)
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&age, "age", "", "Only show items for this age (child or parent)")

	buyCmd := &cobra.Command{
		Use:   "buy ID",
		Short: "Buy an item and wear it if the slot is free",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(a *app) error {
				if !a.store.Onboarded() {
					return errNoHippo
				}
				item, ok := a.store.Catalog().Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown item %q", args[0])
				}
				if !a.store.BuyItem(item.ID) {
					p := a.store.Snapshot()
					if p.IsUnlocked(item.ID) {
						return fmt.Errorf("you already own %s", item.Name)
					}
					return fmt.Errorf("%s costs %d coins, you have %d", item.Name, item.Price, p.Coins)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "🛍️ Bought %s %s. Coins left: %d\n", item.Icon, item.Name, a.store.Snapshot().Coins)
				return nil
			})
		},
	}

	shopCmd.AddCommand(listCmd, buyCmd)
	return shopCmd
}

func newEquipCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equip ID",
		Short: "Wear an owned item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(a *app) error {
				if !a.store.Onboarded() {
					return errNoHippo
				}
				item, ok := a.store.Catalog().Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown item %q", args[0])
				}
				if !a.store.EquipItem(item.ID) {
					return fmt.Errorf("you don't own %s yet", item.Name)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wearing %s %s\n", item.Icon, item.Name)
				return nil
			})
		},
	}
}

func newUnequipCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unequip CATEGORY",
		Short: "Clear an outfit slot (head, upper, lower, feet)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := shop.Category(strings.ToLower(args[0]))
			if !cat.Valid() {
				return fmt.Errorf("unknown slot %q", args[0])
			}
			return withStore(cmd, opts, func(a *app) error {
				if !a.store.Onboarded() {
					return errNoHippo
				}
				a.store.UnequipItem(cat)
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s slot\n", cat)
				return nil
			})
		},
	}
}

func newGameCmd(opts *rootOptions) *cobra.Command {
	var aborted bool
	cmd := &cobra.Command{
		Use:   "game ID SCORE",
		Short: "Report a mini-game score (bubble, dice, memory)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := minigame.ParseID(args[0])
			if err != nil {
				return err
			}
			score, err := strconv.Atoi(args[1])
			if err != nil || score < 0 {
				return fmt.Errorf("score must be a non-negative integer, got %q", args[1])
			}
			return withStore(cmd, opts, func(a *app) error {
				if !a.store.Onboarded() {
					return errNoHippo
				}
				before := a.store.Snapshot().Coins
				res := minigame.Result{Score: score, Finished: !aborted}
				if !a.store.CompleteGame(id, res) {
					fmt.Fprintln(cmd.OutOrStdout(), "No reward this time")
					return nil
				}
				p := a.store.Snapshot()
				fmt.Fprintf(cmd.OutOrStdout(), "🎉 +%d coins. Happiness: %.0f, energy: %.0f\n",
					p.Coins-before, p.Stats.Happiness, p.Stats.Energy)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&aborted, "aborted", false, "The game was closed before it ended")
	return cmd
}

func newBubbleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bubble",
		Short: "Play Bubble Pop in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, true, func(a *app) error {
				if !a.store.Onboarded() {
					return errNoHippo
				}
				if !a.store.CanStartGame(minigame.Bubble) {
					return errors.New("your hippo is too tired to play")
				}
				before := a.store.Snapshot()
				res, err := bubble.Run(before)
				if err != nil {
					return err
				}
				if !a.store.CompleteGame(minigame.Bubble, res) {
					fmt.Fprintf(cmd.OutOrStdout(), "Popped %d points. No reward this time\n", res.Score)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "🫧 %d points, +%d coins\n", res.Score, a.store.Snapshot().Coins-before.Coins)
				return nil
			})
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the hippo and all progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes your hippo. Run again with --yes to confirm")
			}
			return withStore(cmd, opts, func(a *app) error {
				a.store.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), "Hippo reset. Run 'hippo onboard' to start again.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
