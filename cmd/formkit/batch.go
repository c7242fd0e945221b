package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/Abraxas-365/formkit/pkg/asyncx"
	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/Abraxas-365/formkit/pkg/logx"
	"github.com/Abraxas-365/formkit/pkg/metricsx"
	"github.com/Abraxas-365/formkit/pkg/validatex"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

type BatchCommand struct {
	*Container

	flagWorkers int
	flagQuiet   bool
	flagReport  string
	flagMetrics string
}

// batchLine is one "kind value" line of input.
type batchLine struct {
	No    int
	Kind  string
	Value string
}

type batchResult struct {
	Line batchLine
	Err  error
}

// batchReport is the JSON document written by -report.
type batchReport struct {
	RunID    string         `json:"run_id"`
	Source   string         `json:"source"`
	Checked  int            `json:"checked"`
	Invalid  int            `json:"invalid"`
	Failures []batchFailure `json:"failures"`
}

type batchFailure struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *BatchCommand) Synopsis() string {
	return "Validate many values read from a file or stdin"
}

func (c *BatchCommand) Help() string {
	return `Usage: formkit batch [options] [file]

  Reads one "<kind> <value>" pair per line from file, or from stdin when
  no file is given, and validates them concurrently. Blank lines and lines
  starting with # are skipped. Each check is bounded by FORMKIT_TIMEOUT
  and retried on timeout up to FORMKIT_RETRY_MAX times.

  Exits 0 when every line is valid and 1 otherwise.

Options:

  -workers=N   Concurrent checks. Defaults to FORMKIT_WORKERS.
  -quiet       Only print invalid lines and the summary.
  -report=PATH   Also write a JSON summary of the run to PATH.
  -metrics=PATH  Also write Prometheus metrics for a textfile collector.`
}

func (c *BatchCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("batch", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.IntVar(&c.flagWorkers, "workers", c.Config.Async.Workers, "")
	f.BoolVar(&c.flagQuiet, "quiet", false, "")
	f.StringVar(&c.flagReport, "report", "", "")
	f.StringVar(&c.flagMetrics, "metrics", "", "")
	return f
}

func (c *BatchCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return errx.ExitUsage
	}
	if f.NArg() > 1 {
		c.UI.Error(c.Help())
		return errx.ExitUsage
	}
	if c.flagWorkers < 1 {
		c.UI.Error("workers must be at least 1")
		return errx.ExitUsage
	}

	ctx := context.Background()

	in := c.Stdin
	source := "stdin"
	if f.NArg() == 1 {
		source = f.Arg(0)
		rc, err := c.FS.ReadFileStream(ctx, source)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error opening input: %s", errorMessage(err)))
			return errx.ExitCode(err)
		}
		defer rc.Close()
		in = rc
	}

	lines, err := readBatch(in)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading input: %v", err))
		return errx.ExitInternal
	}

	runID := uuid.NewString()
	log := c.Log.WithFields(logx.Fields{
		"run_id":  runID,
		"source":  source,
		"lines":   len(lines),
		"workers": c.flagWorkers,
	})
	log.Info("batch started")

	results, err := c.check(ctx, lines)
	if err != nil {
		log.WithError(err).Error("batch aborted")
		c.UI.Error(err.Error())
		return errx.ExitCode(err)
	}

	var failures *multierror.Error
	report := batchReport{RunID: runID, Source: source, Checked: len(results), Failures: []batchFailure{}}
	invalid := 0
	for _, r := range results {
		if r.Err == nil {
			if !c.flagQuiet {
				c.UI.Output(fmt.Sprintf("line %d: ok %s", r.Line.No, r.Line.Kind))
			}
			continue
		}
		c.UI.Output(fmt.Sprintf("line %d: invalid %s: %s", r.Line.No, r.Line.Kind, errorMessage(r.Err)))
		failures = multierror.Append(failures, fmt.Errorf("line %d: %w", r.Line.No, r.Err))
		invalid++
		report.Failures = append(report.Failures, newBatchFailure(r))
	}

	c.UI.Output(fmt.Sprintf("checked %d lines, %d invalid", len(results), invalid))
	log.WithField("invalid", invalid).Info("batch finished")

	if c.flagReport != "" {
		report.Invalid = invalid
		if err := c.writeReport(ctx, report); err != nil {
			log.WithError(err).Error("report not written")
			c.UI.Error(fmt.Sprintf("error writing report: %s", errorMessage(err)))
			return errx.ExitCode(err)
		}
	}

	if c.flagMetrics != "" {
		if err := c.Metrics.WriteTextfile(c.flagMetrics); err != nil {
			log.WithError(err).Error("metrics not written")
			c.UI.Error(fmt.Sprintf("error writing metrics: %s", errorMessage(err)))
			return errx.ExitCode(err)
		}
	}

	if err := failures.ErrorOrNil(); err != nil {
		log.WithError(err).Debug("batch failures")
		return errx.ExitInvalid
	}
	return errx.ExitOK
}

// check validates every line. A rejected value is a result, not a failure
// of the run; only context cancellation aborts the pool.
func (c *BatchCommand) check(ctx context.Context, lines []batchLine) ([]batchResult, error) {
	async := c.Config.Async
	policy := asyncx.RetryPolicy{MaxRetries: async.MaxRetries, BaseDelay: async.BaseDelay}

	return asyncx.Pool(ctx, c.flagWorkers, lines, func(ctx context.Context, line batchLine) (batchResult, error) {
		started := time.Now()
		_, err := asyncx.RetryWithPolicy(ctx, policy, func(ctx context.Context) (struct{}, error) {
			_, err := asyncx.WithTimeout(ctx, async.Timeout, func(context.Context) (struct{}, error) {
				return struct{}{}, c.checkLine(line)
			}, asyncx.WithLogger(c.Log))
			if asyncx.IsDeadlineExceeded(err) {
				c.Metrics.IncTimeout()
				return struct{}{}, err
			}
			if err != nil {
				return struct{}{}, asyncx.Permanent(err)
			}
			return struct{}{}, nil
		}, asyncx.WithLogger(c.Log), asyncx.OnRetry(func(int, error, time.Duration) {
			c.Metrics.IncRetry()
		}))

		if ctxErr := ctx.Err(); ctxErr != nil {
			return batchResult{}, ctxErr
		}
		c.Metrics.ObserveCheck(kindLabel(line.Kind), checkResult(err), time.Since(started))
		return batchResult{Line: line, Err: err}, nil
	})
}

// kindLabel keeps the metric label set bounded to the known kinds.
func kindLabel(raw string) string {
	kind, err := validatex.ParseKind(raw)
	if err != nil {
		return metricsx.KindUnknown
	}
	return string(kind)
}

func checkResult(err error) string {
	switch {
	case err == nil:
		return metricsx.ResultValid
	case asyncx.IsDeadlineExceeded(err):
		return metricsx.ResultTimeout
	default:
		return metricsx.ResultInvalid
	}
}

func (c *BatchCommand) writeReport(ctx context.Context, report batchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errx.Wrap(err, "encode report", errx.TypeInternal)
	}
	return c.FS.WriteFile(ctx, c.flagReport, append(data, '\n'))
}

func newBatchFailure(r batchResult) batchFailure {
	f := batchFailure{Line: r.Line.No, Kind: r.Line.Kind, Message: r.Err.Error()}
	var e *errx.Error
	if errors.As(r.Err, &e) {
		f.Code = e.Code
		f.Message = e.Message
	}
	return f
}

func (c *BatchCommand) checkLine(line batchLine) error {
	kind, err := validatex.ParseKind(line.Kind)
	if err != nil {
		return err
	}
	if c.Check == nil {
		return c.Checker.Check(kind, line.Value)
	}
	return c.Check(kind, line.Value)
}

// readBatch splits input into lines of "kind value". The value is the
// rest of the line after the first run of whitespace, so passwords may
// contain spaces.
func readBatch(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		kind, value := text, ""
		if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
			kind, value = text[:i], text[i:]
		}
		lines = append(lines, batchLine{
			No:    no,
			Kind:  kind,
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
