package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addiskitchen/platform/internal/client/gateway"
	"github.com/addiskitchen/platform/internal/client/wizard"
)

// prompter reads interactive answers line by line
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
}

func (p *prompter) ask(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func (p *prompter) askFloat(label string) float64 {
	v, _ := strconv.ParseFloat(p.ask(label), 64)
	return v
}

func (p *prompter) askInt(label string) int {
	v, _ := strconv.Atoi(p.ask(label))
	return v
}

func (p *prompter) askBool(label string) bool {
	answer := strings.ToLower(p.ask(label + " [y/N]"))
	return answer == "y" || answer == "yes"
}

func (p *prompter) askList(label string) []string {
	raw := p.ask(label + " (comma-separated, empty for none)")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// askImage loads an upload from a local path; an empty answer leaves the
// image unset (edit mode then keeps the server-side one).
func (p *prompter) askImage(label string) (wizard.ImageRef, error) {
	path := p.ask(label + " (file path, empty to keep/skip)")
	if path == "" {
		return wizard.ImageRef{}, nil
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return wizard.ImageRef{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return wizard.NewImage(path, blob), nil
}

func newPackageWizardCommand(a *app, use, short string, edit bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var ses *wizard.Session
			if edit {
				if len(args) != 1 {
					return fmt.Errorf("edit needs a package id")
				}
				pkg, err := a.gw.Packages.Get(ctx, args[0])
				if err != nil {
					return err
				}
				ses = wizard.NewEditSession(pkg)
			} else {
				ses = wizard.NewSession()
			}

			p := newPrompter()
			for ses.Current() != wizard.StepPreview {
				if err := runWizardStep(p, ses); err != nil {
					return err
				}
			}

			printPreview(p.out, ses)
			if !p.askBool("Submit package") {
				fmt.Fprintln(p.out, "Discarded.")
				return nil
			}

			pkg, err := ses.Submit(ctx, a.gw)
			if err != nil {
				return err
			}
			fmt.Fprintf(p.out, "Saved package %s (%s)\n", pkg.Name.En, pkg.ID)
			return nil
		},
	}
}

func runWizardStep(p *prompter, ses *wizard.Session) error {
	switch ses.Current() {
	case wizard.StepBase:
		return runBaseStep(p, ses)
	case wizard.StepHall:
		return runHallStep(p, ses)
	case wizard.StepFood:
		runFoodStep(p, ses)
	case wizard.StepServices:
		return runServicesStep(p, ses)
	}
	return nil
}

func runBaseStep(p *prompter, ses *wizard.Session) error {
	fmt.Fprintln(p.out, "-- Base info --")
	form := ses.Form()

	name := gateway.Text{En: p.ask("Name (en)"), Am: p.ask("Name (am)")}
	if name.En == "" {
		name.En = form.Name.En
	}
	if name.Am == "" {
		name.Am = form.Name.Am
	}
	desc := gateway.Text{En: p.ask("Description (en)"), Am: p.ask("Description (am)")}

	banner, err := p.askImage("Banner image")
	if err != nil {
		return err
	}
	if banner.IsZero() {
		banner = form.Banner
	}

	patch := wizard.Patch{
		Name:        &name,
		Description: &desc,
		BasePrice:   wizard.Float(p.askFloat("Base price")),
		MinGuests:   wizard.Int(p.askInt("Min guests")),
		MaxGuests:   wizard.Int(p.askInt("Max guests")),
		Banner:      &banner,
		IsCustom:    wizard.Bool(p.askBool("Custom package")),
		PerPerson:   wizard.Bool(p.askBool("Per-person pricing")),
		IsActive:    wizard.Bool(p.askBool("Active")),
	}
	if *patch.PerPerson {
		patch.PerPersonPrice = wizard.Float(p.askFloat("Per-person price"))
	}
	ses.UpdateForm(patch)

	if ok, msg := wizard.ValidateBase(ses.Form(), ses.EditID() == ""); !ok {
		fmt.Fprintln(p.out, "!", msg)
		return nil
	}
	ses.Advance()
	return nil
}

func runHallStep(p *prompter, ses *wizard.Session) error {
	fmt.Fprintln(p.out, "-- Hall --")
	if !p.askBool("Include a hall") {
		ses.SkipHall()
		return nil
	}

	hall := wizard.HallData{Capacity: p.askInt("Hall capacity")}
	for {
		img, err := p.askImage("Hall image")
		if err != nil {
			return err
		}
		if img.IsZero() {
			break
		}
		hall.Images = append(hall.Images, img)
	}
	ses.UpdateForm(wizard.Patch{
		IncludesHall: wizard.Bool(true),
		Hall:         &hall,
	})

	if ok, msg := wizard.ValidateHall(ses.Form()); !ok {
		fmt.Fprintln(p.out, "!", msg)
		return nil
	}
	ses.Advance()
	return nil
}

func runFoodStep(p *prompter, ses *wizard.Session) {
	fmt.Fprintln(p.out, "-- Food & drinks --")
	foods := p.askList("Food item ids")
	drinks := p.askList("Drink item ids")
	ses.UpdateForm(wizard.Patch{Foods: &foods, Drinks: &drinks})
	ses.Advance()
}

func runServicesStep(p *prompter, ses *wizard.Session) error {
	fmt.Fprintln(p.out, "-- Services --")
	var services []gateway.Text
	for {
		en := p.ask("Service (en, empty to finish)")
		if en == "" {
			break
		}
		services = append(services, gateway.Text{En: en, Am: p.ask("Service (am)")})
	}
	ses.UpdateForm(wizard.Patch{Services: &services})

	if ok, msg := wizard.ValidateServices(ses.Form()); !ok {
		fmt.Fprintln(p.out, "!", msg)
		return nil
	}
	ses.Advance()
	return nil
}

func printPreview(out io.Writer, ses *wizard.Session) {
	form := ses.Form()
	fmt.Fprintln(out, "-- Preview --")
	fmt.Fprintf(out, "%s / %s\n", form.Name.En, form.Name.Am)
	fmt.Fprintf(out, "  base price: %.2f  guests: %d-%d\n", form.BasePrice, form.MinGuests, form.MaxGuests)
	fmt.Fprintf(out, "  custom: %v  active: %v\n", form.IsCustom, form.IsActive)
	if form.IncludesHall {
		fmt.Fprintf(out, "  hall capacity: %d (%d images)\n", form.Hall.Capacity, len(form.Hall.Images))
	}
	fmt.Fprintf(out, "  foods: %d  drinks: %d  services: %d\n", len(form.Foods), len(form.Drinks), len(form.Services))
	for _, step := range wizard.Sequence {
		if kind, ok := ses.CompletionOf(step); ok && kind == wizard.CompletedBySkip {
			fmt.Fprintf(out, "  (%s skipped by the custom shortcut)\n", step)
		}
	}
}
