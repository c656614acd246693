package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hupe1980/grovergo"
)

func newCrackCmd(flags *rootFlags) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Hash a password, then recover it classically and with Grover's search",
		RunE: func(cmd *cobra.Command, args []string) error {
			cr, err := flags.cracker()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword(cr)
				if err != nil {
					return err
				}
			}

			execs, err := flags.executors(cmd)
			if err != nil {
				return err
			}

			plan, err := cr.Plan(cmd.Context(), len([]rune(password)))
			if err != nil {
				return err
			}
			cmd.Println(renderPlan(plan))

			report, err := cr.Compare(cmd.Context(), password, execs...)
			if err != nil {
				return err
			}
			cmd.Println(renderReport(report))

			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password to hash and crack (prompted when omitted)")

	return cmd
}

func promptPassword(cr *grovergo.Cracker) (string, error) {
	var (
		lengthInput string
		password    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password length").
				Description("lengths beyond 4 exceed simulable register sizes").
				Value(&lengthInput).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if n < 1 || n > 4 {
						return fmt.Errorf("length must be between 1 and 4")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password to crack").
				Description(fmt.Sprintf("symbols: %s", cr.Alphabet())).
				Value(&password).
				Validate(func(s string) error {
					length, _ := strconv.Atoi(lengthInput)
					if len([]rune(s)) != length {
						return fmt.Errorf("password must be exactly %d symbols", length)
					}
					for _, r := range s {
						if !cr.Alphabet().Contains(r) {
							return fmt.Errorf("symbol %q not in alphabet", r)
						}
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return password, nil
}

func renderPlan(p grovergo.Plan) string {
	var b strings.Builder

	fmt.Fprintln(&b, styleTitle.Render("Search space"))
	fmt.Fprintf(&b, "%d^%d = %d candidates\n", p.Base, p.Length, p.Size)
	fmt.Fprintf(&b, "%d qubits, %d Grover iterations\n", p.Qubits, p.Iterations)
	fmt.Fprintf(&b, "predicted success probability %.1f%%\n", p.SuccessProbability*100)

	if p.Qubits > 20 {
		fmt.Fprintln(&b, styleWarning.Render("register too wide for exact simulation, expect long runtimes"))
	}

	return styleBox.Render(strings.TrimRight(b.String(), "\n"))
}

func renderReport(r *grovergo.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", styleTitle.Render("Digest"), r.Digest)

	fmt.Fprintf(&b, "%-22s %-12s %-12s %-12s %s\n",
		styleMuted.Render("method"),
		styleMuted.Render("candidate"),
		styleMuted.Render("effort"),
		styleMuted.Render("elapsed"),
		styleMuted.Render("status"),
	)

	if err := r.Classical.Err; err != nil {
		fmt.Fprintf(&b, "%-22s %-12s %-12s %-12s %s\n", "classical", "-", "-", "-", styleError.Render(err.Error()))
	} else {
		res := r.Classical.Result
		fmt.Fprintf(&b, "%-22s %-12s %-12s %-12s %s\n",
			"classical",
			res.Candidate,
			fmt.Sprintf("%d hashes", res.Attempts),
			res.Elapsed.Round(time.Microsecond).String(),
			styleSuccess.Render("found"),
		)
	}

	for _, row := range r.Quantum {
		if row.Failed() {
			status := row.Err.Error()
			if shots := row.PartialShots(); shots > 0 {
				status = fmt.Sprintf("%s (%d partial shots)", status, shots)
			}
			fmt.Fprintf(&b, "%-22s %-12s %-12s %-12s %s\n", row.Backend, "-", "-", "-", styleError.Render(status))
			continue
		}

		res := row.Result
		status := styleSuccess.Render(fmt.Sprintf("found (%.1f%% of shots)", res.Outcome.Confidence*100))
		if !res.Outcome.Matched {
			status = styleWarning.Render(fmt.Sprintf("missed (%.1f%% on wrong state)", res.Outcome.Confidence*100))
		}
		fmt.Fprintf(&b, "%-22s %-12s %-12s %-12s %s\n",
			row.Backend,
			res.Outcome.Candidate,
			fmt.Sprintf("%d iterations", res.Plan.Iterations),
			res.Elapsed.Round(time.Microsecond).String(),
			status,
		)
	}

	return strings.TrimRight(b.String(), "\n")
}
