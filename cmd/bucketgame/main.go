/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bucketgame/pkg/container"
	"bucketgame/pkg/scenario"
)

var (
	version      = "dev"
	startRunning = time.Now()
	au           = aurora.NewAurora(true)
)

type options struct {
	config    scenario.Config
	demo      bool
	showTrace bool
	verbose   bool
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "bucketgame",
		Short:         "Fill, pour and overflow buckets and barrels",
		Version:       fmt.Sprintf("%s - %s", version, runtime.Version()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Version for bucketgame",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), root.Version)
		},
	})
	root.AddCommand(newRunCommand())

	return root
}

func newRunCommand() *cobra.Command {
	opts := options{config: scenario.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a generated or the demo scenario and print what happened",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&opts.config.Seed, "seed", opts.config.Seed, "Seed of the scenario generator")
	flags.IntVar(&opts.config.Containers, "containers", opts.config.Containers, "Number of containers to generate")
	flags.IntVar(&opts.config.Steps, "steps", opts.config.Steps, "Number of steps to generate")
	flags.IntVar(&opts.config.MinNumber, "min", opts.config.MinNumber, "Smallest generated quantity")
	flags.IntVar(&opts.config.MaxNumber, "max", opts.config.MaxNumber, "Largest generated quantity (exclusive)")
	flags.BoolVar(&opts.demo, "demo", false, "Run the demo scenario instead of a generated one")
	flags.BoolVar(&opts.showTrace, "showTrace", true, "Show the step trace")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Include debug logs")

	return cmd
}

func run(opts options, out io.Writer) error {
	if !opts.demo {
		if err := opts.config.Validate(); err != nil {
			return errors.Wrap(err, "invalid scenario configuration")
		}
	}

	s := newSession(opts.verbose)
	steps, err := s.setup(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Running scenario %s ... ", au.Bold(s.id.String()))

	completed, ignored, err := s.runner.Run(steps)
	if err != nil {
		return errors.Wrap(err, "scenario stopped")
	}

	if !opts.showTrace {
		fmt.Fprintf(out, "%s %d completed, %d ignored\n", au.Bold("Done."), len(completed), len(ignored))
		return nil
	}

	return s.Report(completed, ignored, out)
}

type session struct {
	id     uuid.UUID
	runner scenario.Runner
	logbuf *bytes.Buffer
}

func newSession(verbose bool) *session {
	buf := new(bytes.Buffer)

	return &session{
		id:     uuid.New(),
		runner: scenario.NewRunner(newLogger(buf, verbose)),
		logbuf: buf,
	}
}

func (s *session) setup(opts options) ([]scenario.Step, error) {
	specs := scenario.DemoContainers()
	var generator *scenario.Generator
	if !opts.demo {
		generator = scenario.NewGenerator(opts.config)
		specs = generator.Containers(opts.config.Containers)
	}

	names := make([]container.ContainerName, 0, len(specs))
	for _, cs := range specs {
		if _, err := s.runner.Add(cs); err != nil {
			return nil, errors.Wrapf(err, "could not set up container '%s'", cs.Name)
		}
		names = append(names, cs.Name)
	}

	if opts.demo {
		return scenario.DemoSteps(), nil
	}
	return generator.Steps(names, opts.config.Steps), nil
}

func (s *session) Report(completed []scenario.CompletedStep, ignored []scenario.IgnoredStep, writer io.Writer) error {
	printer := message.NewPrinter(language.AmericanEnglish)

	fmt.Fprintf(writer,
		"%5s      %15s %-8d  %13s %-8d  %20s %-10s\n\n",
		au.Bold("Done."),
		au.BgGreen("Completed steps"),
		au.Bold(len(completed)),
		au.BgBrown("Ignored steps"),
		au.Bold(len(ignored)),
		au.Cyan("Running time:"),
		time.Since(startRunning).String(),
	)

	if setup := s.runner.SetupNotifications(); len(setup) > 0 {
		fmt.Fprintln(writer, au.Bold(fmt.Sprintf("%d notifications while setting up: %s", len(setup), summarize(setup))))
		fmt.Fprint(writer, "\n")
	}

	fmt.Fprintln(writer, au.BgGreen(fmt.Sprintf("%-13s %-22s %-22s %8s  %-20s %-20s  %-40s", "Step", "Target", "Source", "Amount", "Target content", "Source content", "Notifications")).Bold())
	for _, c := range completed {
		st := c.Step

		source := "-"
		sourceContent := "-"
		if c.SourceBefore != nil && c.SourceAfter != nil {
			source = string(c.SourceBefore.Name)
			sourceContent = printer.Sprintf("%d ⟶ %d", c.SourceBefore.Content, c.SourceAfter.Content)
		}

		amount := printer.Sprintf("%d", st.Amount())
		if st.Kind() == scenario.StepFillFrom {
			amount = printer.Sprintf("%d", c.Moved)
		}

		fmt.Fprintln(writer, printer.Sprintf(
			"%-13s %-22s %-22s %8s  %-20s %-20s  %s",
			st.Kind(),
			st.Target(),
			source,
			amount,
			printer.Sprintf("%d ⟶ %d / %d", c.TargetBefore.Content, c.TargetAfter.Content, c.TargetAfter.Capacity),
			sourceContent,
			strings.Join(append([]string{summarize(c.Notifications)}, st.Notes()...), "; "),
		))
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.BgBrown(fmt.Sprintf("%-13s %-22s %-22s %8s  %-20s %-40s", "Step", "Target", "Source", "Amount", "Reason ignored", "Notes")).Bold())
	for _, i := range ignored {
		st := i.Step

		coloredReason := i.Reason
		switch i.Reason {
		case scenario.UnknownContainer:
			coloredReason = au.Red(i.Reason).String()
		case scenario.NegativeAmount:
			coloredReason = au.Magenta(i.Reason).String()
		case scenario.SourceNotBucket:
			coloredReason = au.Brown(i.Reason).String()
		case scenario.SameContainer:
			coloredReason = au.Cyan(i.Reason).String()
		}

		source := string(st.Source())
		if source == "" {
			source = "-"
		}

		fmt.Fprintln(writer, printer.Sprintf(
			"%-13s %-22s %-22s %8d  %-29s %s",
			st.Kind(),
			st.Target(),
			source,
			st.Amount(),
			coloredReason,
			strings.Join(st.Notes(), "; "),
		))
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.BgBlue(fmt.Sprintf("%-22s %-12s %10s %10s  %-8s", "Container", "Kind", "Content", "Capacity", "Level")).Bold())
	for _, c := range s.runner.Containers() {
		level := string(c.Level())
		if c.Level() == container.LevelFull {
			level = au.Green(level).String()
		}
		fmt.Fprintln(writer, printer.Sprintf("%-22s %-12s %10d %10d  %s", c.Name(), c.Kind(), c.Content(), c.Capacity(), level))
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.Bold(fmt.Sprintf("%-120s", "          Log output")).BgBlue())
	fmt.Fprintln(writer, s.logbuf.String())

	return nil
}

func summarize(notifications []scenario.Notification) string {
	if len(notifications) == 0 {
		return "-"
	}

	counts := make(map[scenario.NotificationKind]int)
	lost := 0
	for _, n := range notifications {
		counts[n.Kind]++
		lost += n.Lost
	}

	parts := make([]string, 0, 3)
	if counts[scenario.NotifiedFull] > 0 {
		parts = append(parts, fmt.Sprintf("full x%d", counts[scenario.NotifiedFull]))
	}
	if counts[scenario.NotifiedOverflowing] > 0 {
		parts = append(parts, fmt.Sprintf("overflowing x%d", counts[scenario.NotifiedOverflowing]))
	}
	if counts[scenario.NotifiedOverflowed] > 0 {
		parts = append(parts, fmt.Sprintf("overflowed x%d (%d lost)", counts[scenario.NotifiedOverflowed], lost))
	}
	return strings.Join(parts, ", ")
}

func newLogger(buf io.Writer, verbose bool) *zap.SugaredLogger {
	sink := zapcore.AddSync(buf)

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		level,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("bucketgame").Sugar()
}
