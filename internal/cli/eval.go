package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/records/pkg/types"
	"github.com/spf13/cobra"
)

// Assignment parsing errors.
var (
	errMalformedAssignment = errors.New("malformed assignment")
	errInvalidValue        = errors.New("invalid value")
)

// assignment is one parsed item=value argument.
type assignment struct {
	item  types.Item
	value float64
}

// slotReport is the value of one item after all assignments.
type slotReport struct {
	Item  string    `json:"item"`
	Index int       `json:"index"`
	Value jsonFloat `json:"value"`
}

// evalReport is the result of "records eval".
type evalReport struct {
	Variant   string       `json:"variant"`
	Slots     []slotReport `json:"slots"`
	Sum       jsonFloat    `json:"sum"`
	IsDefault bool         `json:"is_default"`
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [item=value ...]",
		Short: "Apply assignments to a fresh record and report its slots",
		Long: "Build a default record of the configured variant, apply each item=value\n" +
			"assignment in order and print every slot, the sum and whether the record\n" +
			"is in its default state. Items are named first, second and third, or\n" +
			"given by index 0, 1 and 2. Values must be finite numbers.",
		Example: "  records eval first=10 second=20 third=30\n" +
			"  records eval --variant tuple first=10.7 second=0.1",
		RunE: a.runEval,
	}
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	assignments := make([]assignment, 0, len(args))
	for _, arg := range args {
		as, err := parseAssignment(arg)
		if err != nil {
			return userError(err)
		}
		assignments = append(assignments, as)
	}

	record, err := types.NewCollection(a.cfg.Variant)
	if err != nil {
		return userError(err)
	}
	a.apply(record, assignments)

	report := buildReport(a.cfg.Variant, record)
	out := cmd.OutOrStdout()
	if a.jsonMode {
		if err := writeJSON(out, report); err != nil {
			return sysError(err)
		}
		return nil
	}

	fmt.Fprintf(out, "%-8s %s\n", "variant", report.Variant)
	for _, s := range report.Slots {
		fmt.Fprintf(out, "%-8s %s\n", s.Item, formatFloat(float64(s.Value)))
	}
	fmt.Fprintf(out, "%-8s %s\n", "sum", formatFloat(float64(report.Sum)))
	fmt.Fprintf(out, "%-8s %t\n", "default", report.IsDefault)
	return nil
}

// apply sets each assignment on record in order and logs values the storage
// could not hold exactly.
func (a *app) apply(record types.ItemCollection, assignments []assignment) {
	for _, as := range assignments {
		record.Set(as.item, as.value)
		stored := record.Get(as.item)
		a.logger.Debug("set item", "item", as.item, "value", as.value)
		if stored != as.value {
			a.logger.Warn("value narrowed by storage",
				"variant", a.cfg.Variant,
				"item", as.item,
				"requested", as.value,
				"stored", stored,
			)
		}
	}
}

// parseAssignment parses "item=value".
func parseAssignment(arg string) (assignment, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return assignment{}, fmt.Errorf("%w: %q (want item=value)", errMalformedAssignment, arg)
	}
	item, err := types.ParseItem(key)
	if err != nil {
		return assignment{}, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return assignment{}, fmt.Errorf("%w: %q", errInvalidValue, raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return assignment{}, fmt.Errorf("%w: %q is not finite", errInvalidValue, raw)
	}
	return assignment{item: item, value: value}, nil
}

func buildReport(variant string, record types.ItemCollection) evalReport {
	report := evalReport{
		Variant:   variant,
		Slots:     make([]slotReport, 0, types.ItemCount),
		Sum:       jsonFloat(types.Sum(record)),
		IsDefault: types.IsDefault(record),
	}
	for _, it := range types.Items() {
		report.Slots = append(report.Slots, slotReport{
			Item:  it.String(),
			Index: it.Index(),
			Value: jsonFloat(record.Get(it)),
		})
	}
	return report
}
