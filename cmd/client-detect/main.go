package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/leodido/structcli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"

	clientdetect "github.com/ltodorov/client-detect"
)

// Build metadata injected via ldflags. When built without ldflags
// (e.g., plain `go build`), these remain at their zero values and the
// version command omits them gracefully.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := &cobra.Command{
		Use:   "client-detect",
		Short: "Capability detection for client environments",
		Long: `client-detect replays the built-in capability detections against a
recorded client environment profile.

It detects storage availability, animation frame scheduling, fullscreen,
CSS calc support, touch input, and standalone display mode, resolving
vendor-prefixed property names along the way. Use it to inspect captured
client profiles or to gate deployments on required capabilities.`,
		SilenceUsage: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(classesCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// detect builds a detector from a profile and executes the built-in
// detection set against it.
func detect(profilePath, classPrefix string) (*clientdetect.Detector, error) {
	profile, err := clientdetect.LoadProfile(profilePath)
	if err != nil {
		return nil, err
	}

	d := clientdetect.New(clientdetect.WithClassPrefix(classPrefix))
	clientdetect.RegisterDefaults(d, profile.Environment())
	d.Run()
	return d, nil
}

// RunOptions defines flags for the run subcommand.
type RunOptions struct {
	Profile     string `flag:"profile" flagshort:"p" flagdescr:"Path to the client environment profile (YAML)"`
	ClassPrefix string `flag:"class-prefix" flagdescr:"Prefix prepended to every emitted class token"`
	JSON        bool   `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *RunOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func runCmd() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all detections against a profile and display results",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			d, err := detect(opts.Profile, opts.ClassPrefix)
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(d.Report())
			}

			fmt.Print(d.Report())
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// CheckOptions defines flags for the check subcommand.
type CheckOptions struct {
	Profile string             `flag:"profile" flagshort:"p" flagdescr:"Path to the client environment profile (YAML)"`
	Require requiredDetections `flag:"require" flagshort:"r" flagdescr:"Required capabilities (see available detections above)" flagrequired:"true" flagcustom:"true"`
	JSON    bool               `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *CheckOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *CheckOptions) DefineRequire(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*requiredDetections)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *CheckOptions) DecodeRequire(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseRequiredDetections(s)
}

func checkCmd() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check specific capability requirements against a profile",
		Long:  checkLongDescription(),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(opts.Require) == 0 {
				return fmt.Errorf("no capabilities specified")
			}

			d, err := detect(opts.Profile, "")
			if err != nil {
				return err
			}

			names := make([]string, 0, len(opts.Require))
			for _, det := range opts.Require {
				names = append(names, det.String())
			}

			if err := d.Require(names...); err != nil {
				var ce *clientdetect.CapabilityError
				if errors.As(err, &ce) {
					if opts.JSON {
						return printJSON(map[string]any{
							"ok":         false,
							"capability": ce.Capability,
							"reason":     ce.Reason,
						})
					}
					fmt.Fprintf(os.Stderr, "FAIL: %s — %s\n", ce.Capability, ce.Reason)
					os.Exit(1)
				}
				return err
			}

			if opts.JSON {
				return printJSON(map[string]any{"ok": true})
			}
			fmt.Println("OK: all requirements satisfied")
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// ClassesOptions defines flags for the classes subcommand.
type ClassesOptions struct {
	Profile     string `flag:"profile" flagshort:"p" flagdescr:"Path to the client environment profile (YAML)"`
	ClassPrefix string `flag:"class-prefix" flagdescr:"Prefix prepended to every emitted class token"`
}

func (o *ClassesOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func classesCmd() *cobra.Command {
	opts := &ClassesOptions{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the class attribute string for a profile",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			d, err := detect(opts.Profile, opts.ClassPrefix)
			if err != nil {
				return err
			}

			fmt.Println(d.ClassAttribute())
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool and library version",
		RunE: func(c *cobra.Command, args []string) error {
			if version != "" {
				fmt.Printf("client-detect %s", version)
				if commit != "" {
					fmt.Printf(" (%s)", commit)
				}
				if date != "" {
					fmt.Printf(" built %s", date)
				}
				fmt.Println()
			} else {
				fmt.Println("client-detect (dev)")
			}

			fmt.Printf("Library: %s\n", clientdetect.Version)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func availableDetections() string {
	return strings.Join(clientdetect.DefaultDetectionNames(), ", ")
}

func checkLongDescription() string {
	return fmt.Sprintf(`Check that the profiled client supports all required capabilities.
Exits with code 0 if all requirements are met, 1 if any are missing.

Available detections:
  %s`, availableDetections())
}

// detection enumerates the built-in detection names for flag parsing.
type detection int

var detectionIdentifierMap = func() map[detection][]string {
	names := clientdetect.DefaultDetectionNames()
	ids := make(map[detection][]string, len(names))
	for i, name := range names {
		ids[detection(i)] = []string{name}
	}
	return ids
}()

func (d detection) String() string {
	if names, ok := detectionIdentifierMap[d]; ok {
		return names[0]
	}
	return fmt.Sprintf("detection(%d)", int(d))
}

type requiredDetections []detection

func (r *requiredDetections) String() string {
	names := make([]string, 0, len(*r))
	for _, d := range *r {
		names = append(names, d.String())
	}

	return strings.Join(names, ",")
}

func (r *requiredDetections) Set(input string) error {
	detections, err := parseRequiredDetections(input)
	if err != nil {
		return err
	}

	*r = append(*r, detections...)
	return nil
}

func (r *requiredDetections) Type() string {
	return "detection"
}

func parseRequiredDetections(input string) (requiredDetections, error) {
	if strings.TrimSpace(input) == "" {
		return requiredDetections{}, nil
	}

	parts := strings.Split(input, ",")
	detections := make(requiredDetections, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		var det detection
		enumValue := enumflag.New(&det, "detection", detectionIdentifierMap, enumflag.EnumCaseInsensitive)
		if err := enumValue.Set(name); err != nil {
			return nil, fmt.Errorf("unknown detection: %q (available: %s)", name, availableDetections())
		}

		detections = append(detections, det)
	}

	return detections, nil
}
