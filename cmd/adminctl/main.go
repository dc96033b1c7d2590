// adminctl is a terminal client for the platform API: sign in, inspect
// the catalog, and flip activation flags without opening the console.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/addiskitchen/platform/internal/client/gateway"
	"github.com/addiskitchen/platform/internal/client/listquery"
	"github.com/addiskitchen/platform/internal/client/notify"
	"github.com/addiskitchen/platform/internal/client/session"
	"github.com/addiskitchen/platform/internal/client/storefront"
	"github.com/addiskitchen/platform/pkg/config"
	"github.com/addiskitchen/platform/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	tokens *session.FileTokenStore
	gw     *gateway.Gateway
}

func newRootCommand() *cobra.Command {
	var a app

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Administer the restaurant platform from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Init(&logger.Config{
				Level:       "warn",
				ServiceName: "adminctl",
				Development: cfg.IsDevelopment(),
			}); err != nil {
				return err
			}

			tokens, err := session.NewFileTokenStore(cfg.Client.CredentialFile)
			if err != nil {
				return fmt.Errorf("failed to open credential store: %w", err)
			}

			client := gateway.NewClient(gateway.Config{
				BaseURL: cfg.Client.APIBaseURL,
				Timeout: cfg.Client.RequestTimeout,
			}, tokens, gateway.NewCache())
			client.OnSessionExpired(func() {
				fmt.Fprintln(os.Stderr, "Session expired, please log in again.")
			})

			a.cfg = cfg
			a.tokens = tokens
			a.gw = gateway.New(client)
			return nil
		},
	}

	root.AddCommand(
		newLoginCommand(&a),
		newLogoutCommand(&a),
		newWhoamiCommand(&a),
		newCategoriesCommand(&a),
		newMenuItemsCommand(&a),
		newPackagesCommand(&a),
		newBrowseCommand(&a),
	)
	return root
}

// drainNotifications prints everything the notification center collected
// during a command and reports whether any of it was a failure.
func drainNotifications(center *notify.Center) bool {
	failed := false
	for _, n := range center.Active() {
		switch n.Level {
		case notify.LevelError:
			failed = true
			fmt.Fprintln(os.Stderr, "!", n.Message)
		default:
			fmt.Println(n.Message)
		}
		center.Dismiss(n.ID)
	}
	return failed
}

// stdinConfirmer asks yes/no questions on the terminal
func stdinConfirmer() listquery.Confirmer {
	return listquery.ConfirmerFunc(func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		var answer string
		if _, err := fmt.Scanln(&answer); err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})
}

func newLoginCommand(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and persist the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.gw.Login(context.Background(), args[0], password)
			if err != nil {
				return err
			}
			if err := a.tokens.Save(result.Token); err != nil {
				return fmt.Errorf("failed to persist token: %w", err)
			}
			fmt.Printf("Signed in as %s (%s)\n", result.User.Name, result.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			a.gw.Client().Cache().Clear()
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.gw.Me(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}

func newCategoriesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect menu categories",
	}

	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.gw.Categories.List(context.Background(), gateway.ListOptions{
				Page:  page,
				Limit: a.cfg.Listing.CategoryLimit,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTRADITIONAL\tACTIVE")
			for _, c := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", c.ID, c.Name.En, c.IsTraditional, c.IsActive)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("page %d of %d (%d total)\n", result.Page, result.LastPage, result.Total)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page to fetch")

	var nameEn, nameAm string
	var traditional, active bool
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := a.gw.Categories.Create(context.Background(), map[string]interface{}{
				"name":          map[string]string{"en": nameEn, "am": nameAm},
				"isTraditional": traditional,
				"isActive":      active,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s)\n", category.Name.En, category.ID)
			return nil
		},
	}
	create.Flags().StringVar(&nameEn, "en", "", "English name")
	create.Flags().StringVar(&nameAm, "am", "", "Amharic name")
	create.Flags().BoolVar(&traditional, "traditional", false, "mark as traditional cuisine")
	create.Flags().BoolVar(&active, "active", true, "visible on the storefront")
	_ = create.MarkFlagRequired("en")
	_ = create.MarkFlagRequired("am")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (asks first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			center := notify.NewCenter(time.Minute)
			ctrl := listquery.NewController(listquery.NewQuery(), nil, center)

			ctrl.Delete(context.Background(),
				fmt.Sprintf("Delete category %s?", args[0]),
				stdinConfirmer(),
				func(ctx context.Context) error {
					return a.gw.Categories.Delete(ctx, args[0])
				})
			if drainNotifications(center) {
				return errors.New("delete failed")
			}
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a category's active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			category, err := a.gw.Categories.Get(ctx, args[0])
			if err != nil {
				return err
			}

			center := notify.NewCenter(time.Minute)
			ctrl := listquery.NewController(listquery.NewQuery(), nil, center)

			shown := category.IsActive
			ctrl.Toggle(ctx, category.IsActive,
				func(v bool) { shown = v },
				func(ctx context.Context, desired bool) error {
					_, err := a.gw.Categories.Update(ctx, category.ID, map[string]interface{}{
						"name":          category.Name,
						"description":   category.Description,
						"image":         category.Image,
						"isTraditional": category.IsTraditional,
						"isActive":      desired,
					})
					return err
				})
			if drainNotifications(center) {
				return errors.New("toggle failed")
			}
			fmt.Printf("%s is now active=%v\n", category.Name.En, shown)
			return nil
		},
	}

	cmd.AddCommand(list, create, del, toggle)
	return cmd
}

func newMenuItemsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu-items",
		Short: "Inspect menu items",
	}

	var page int
	var search, categoryID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := map[string]string{}
			if search != "" {
				filters["searchTerm"] = search
			}
			if categoryID != "" {
				filters["categoryId"] = categoryID
			}

			result, err := a.gw.MenuItems.List(context.Background(), gateway.ListOptions{
				Page:    page,
				Limit:   a.cfg.Listing.MenuItemLimit,
				Filters: filters,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tDRINK\tACTIVE")
			for _, item := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%v\t%v\n", item.ID, item.Name.En, item.Price, item.IsDrink, item.IsActive)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("page %d of %d (%d total)\n", result.Page, result.LastPage, result.Total)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page to fetch")
	list.Flags().StringVar(&search, "search", "", "search term")
	list.Flags().StringVar(&categoryID, "category", "", "filter by category id")

	cmd.AddCommand(list)
	return cmd
}

func newBrowseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the public storefront (no sign-in needed)",
	}
	front := func() *storefront.Storefront { return storefront.New(a.gw) }

	var traditional bool
	menu := &cobra.Command{
		Use:   "menu [category-id]",
		Short: "Browse the public menu",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID := ""
			if len(args) == 1 {
				categoryID = args[0]
			}
			result, err := front().MenuItems(context.Background(), categoryID, 1, a.cfg.Listing.MenuItemLimit)
			if err != nil {
				return err
			}
			for _, item := range result.Items {
				fmt.Printf("%s / %s — %.2f\n", item.Name.En, item.Name.Am, item.Price)
			}
			return nil
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "Browse public categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *bool
			if cmd.Flags().Changed("traditional") {
				filter = &traditional
			}
			result, err := front().Categories(context.Background(), filter, 1, a.cfg.Listing.CategoryLimit)
			if err != nil {
				return err
			}
			for _, c := range result.Items {
				fmt.Printf("%s / %s\n", c.Name.En, c.Name.Am)
			}
			return nil
		},
	}
	categories.Flags().BoolVar(&traditional, "traditional", false, "only traditional (or only non-traditional with =false)")

	packages := &cobra.Command{
		Use:   "packages [id]",
		Short: "Browse the package gallery or one package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				pkg, err := front().Package(ctx, args[0])
				if err != nil {
					if gateway.IsNotFound(err) {
						fmt.Println("That package is no longer available.")
						return nil
					}
					return err
				}
				fmt.Printf("%s / %s — %.2f (guests %d-%d)\n",
					pkg.Name.En, pkg.Name.Am, pkg.BasePrice, pkg.MinGuests, pkg.MaxGuests)
				return nil
			}

			active, err := front().Packages(ctx)
			if err != nil {
				return err
			}
			for _, pkg := range active {
				fmt.Printf("%s — %.2f (%s)\n", pkg.Name.En, pkg.BasePrice, pkg.ID)
			}
			return nil
		},
	}

	cmd.AddCommand(menu, categories, packages)
	return cmd
}

func newPackagesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Inspect and manage catering packages",
	}

	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "List packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.gw.Packages.List(context.Background(), gateway.ListOptions{
				Page:  page,
				Limit: a.cfg.Listing.PackageLimit,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tCUSTOM\tACTIVE")
			for _, p := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%v\t%v\n", p.ID, p.Name.En, p.BasePrice, p.IsCustom, p.IsActive)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("page %d of %d (%d total)\n", result.Page, result.LastPage, result.Total)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page to fetch")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := a.gw.Packages.Get(context.Background(), args[0])
			if err != nil {
				if gateway.IsNotFound(err) {
					return fmt.Errorf("package %s not found", args[0])
				}
				return err
			}
			fmt.Printf("%s / %s\n", pkg.Name.En, pkg.Name.Am)
			fmt.Printf("  base price: %.2f  guests: %d-%d\n", pkg.BasePrice, pkg.MinGuests, pkg.MaxGuests)
			fmt.Printf("  custom: %v  active: %v  per person: %v\n", pkg.IsCustom, pkg.IsActive, pkg.PerPerson)
			if pkg.IncludesHall && pkg.Hall != nil {
				fmt.Printf("  hall capacity: %d\n", pkg.Hall.Capacity)
			}
			fmt.Printf("  foods: %d  drinks: %d  services: %d\n", len(pkg.FoodIDs), len(pkg.DrinkIDs), len(pkg.Services))
			return nil
		},
	}

	setActive := func(use, short string, active bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				pkg, err := a.gw.SetPackageActive(context.Background(), args[0], active)
				if err != nil {
					return err
				}
				fmt.Printf("%s is now active=%v\n", pkg.Name.En, pkg.IsActive)
				return nil
			},
		}
	}

	cmd.AddCommand(list, show,
		newPackageWizardCommand(a, "create", "Create a package through the step wizard", false),
		newPackageWizardCommand(a, "edit <id>", "Edit a package through the step wizard", true),
		setActive("activate", "Activate a package", true),
		setActive("deactivate", "Deactivate a package", false))
	return cmd
}
