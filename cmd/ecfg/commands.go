package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/muurk/ecfg"
	"github.com/muurk/ecfg/internal/logging"
)

// Command flags
var (
	configDir    string
	encoded      bool
	outputFormat string
	convertTo    string
)

// registry is shared by all commands in one invocation so that repeated
// lookups hit the same cache the library would use. Built lazily so the
// logger configured in main is the one it captures.
var registry *ecfg.Registry

func reg() *ecfg.Registry {
	if registry == nil {
		registry = ecfg.New(ecfg.WithLogger(logging.GetLogger()))
	}
	return registry
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "path", "", "Directory holding the configuration file (default ~/.empire)")
	rootCmd.PersistentFlags().BoolVar(&encoded, "encoded", false, "Treat the configuration file as base85 encoded")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(convertCmd)
}

// getOptions translates the persistent flags into registry options.
func getOptions() []ecfg.GetOption {
	var opts []ecfg.GetOption
	if configDir != "" {
		opts = append(opts, ecfg.WithPath(configDir))
	}
	if encoded {
		opts = append(opts, ecfg.Encoded())
	}
	return opts
}

// loadDocument loads the named configuration as a dynamic mapping and
// returns it alongside its JSON form.
func loadDocument(name string) (ecfg.MapConfig, []byte, error) {
	cfg, err := reg().GetConfig(name, ecfg.MapConfig{}, getOptions()...)
	if err != nil {
		return nil, nil, err
	}
	m := cfg.(ecfg.MapConfig)
	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, nil, err
	}
	return m, data, nil
}

// showCmd prints a whole configuration
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a configuration",
	Long: `Print the named configuration.

The configuration is loaded through the registry: a missing file yields
an empty document rather than an error. Use --format to select the
output representation.`,
	Example: `  # Pretty JSON (default)
  ecfg show myapp

  # YAML output
  ecfg show myapp --format yaml

  # Single-line JSON for scripting
  ecfg show myapp --format compact

  # Base85-encoded file in a custom directory
  ecfg show myapp --path /etc/myapp --encoded`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format (json, yaml, compact)")
}

func runShow(cmd *cobra.Command, args []string) error {
	m, data, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		pretty, err := json.MarshalIndent(map[string]any(m), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(headerLine(args[0]))
		fmt.Println(string(pretty))
	case "yaml":
		out, err := yaml.Marshal(map[string]any(m))
		if err != nil {
			return err
		}
		fmt.Println(headerLine(args[0]))
		fmt.Print(string(out))
	case "compact":
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown format %q (expected json, yaml, or compact)", outputFormat)
	}
	return nil
}

// getCmd queries one value by JSON path
var getCmd = &cobra.Command{
	Use:   "get <name> <path>",
	Short: "Print a single configuration value",
	Long: `Print the value at a JSON path inside the named configuration.

Paths use gjson syntax: dot-separated keys with array indexing, for
example "server.port" or "endpoints.0.url".`,
	Example: `  ecfg get myapp server.port
  ecfg get myapp endpoints.0.url --path /etc/myapp`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	_, data, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	result := gjson.GetBytes(data, args[1])
	if !result.Exists() {
		return fmt.Errorf("no value at path %q in configuration %q", args[1], args[0])
	}
	fmt.Println(result.Raw)
	return nil
}

// setCmd sets one value by JSON path and saves
var setCmd = &cobra.Command{
	Use:   "set <name> <path> <value>",
	Short: "Set a single configuration value",
	Long: `Set the value at a JSON path inside the named configuration and
write the file back.

The value is interpreted as JSON when possible (numbers, booleans, null,
quoted strings, arrays, objects) and as a plain string otherwise. The
file is created if it does not exist yet.`,
	Example: `  ecfg set myapp server.port 8080
  ecfg set myapp server.host example.com
  ecfg set myapp features.beta true --encoded`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	m, data, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	// Prefer the JSON reading of the value; fall back to a raw string.
	var value any = args[2]
	var parsed any
	if err := json.Unmarshal([]byte(args[2]), &parsed); err == nil {
		value = parsed
	}

	updated, err := sjson.SetBytes(data, args[1], value)
	if err != nil {
		return fmt.Errorf("cannot set %q: %w", args[1], err)
	}

	var next map[string]any
	if err := json.Unmarshal(updated, &next); err != nil {
		return fmt.Errorf("cannot apply updated document: %w", err)
	}

	// Mutate the live instance so the registry persists the change.
	for k := range m {
		delete(m, k)
	}
	for k, v := range next {
		m[k] = v
	}

	if err := reg().SaveAll(); err != nil {
		return err
	}
	fmt.Printf("%s %s = %s\n", successMark(), args[1], string(mustCompact(value)))
	return nil
}

// pathCmd prints the resolved file location
var pathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Print the resolved file path for a configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ecfg.ResolvePath(ecfg.NormalizeName(args[0]), configDir)
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

// initCmd creates a configuration file with an empty document
var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create an empty configuration file",
	Long: `Create the named configuration file with an empty document if it
does not exist yet, in plain or base85-encoded form per --encoded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := reg().GetConfig(args[0], ecfg.MapConfig{}, getOptions()...); err != nil {
			return err
		}
		reg().Shutdown()
		p, err := ecfg.ResolvePath(ecfg.NormalizeName(args[0]), configDir)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", successMark(), p)
		return nil
	},
}

// convertCmd re-encodes an existing file between plain and encoded form
var convertCmd = &cobra.Command{
	Use:   "convert <name>",
	Short: "Convert a configuration file between plain and encoded form",
	Long: `Convert the named configuration file to the format given by --to.

The source format is assumed to be the opposite of the target: converting
to "encoded" reads the file as plain JSON, converting to "plain" reads it
as base85. The file is rewritten in place.`,
	Example: `  ecfg convert myapp --to encoded
  ecfg convert myapp --to plain --path /etc/myapp`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target format (plain, encoded)")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var toEncoded bool
	switch convertTo {
	case "plain":
		toEncoded = false
	case "encoded":
		toEncoded = true
	default:
		return fmt.Errorf("unknown target format %q (expected plain or encoded)", convertTo)
	}

	p, err := ecfg.ResolvePath(ecfg.NormalizeName(args[0]), configDir)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("cannot read configuration file: %w", err)
	}

	m, err := ecfg.DecodeDocument(data, !toEncoded)
	if err != nil {
		return err
	}
	out, err := ecfg.EncodeDocument(m, toEncoded)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, out, 0o600); err != nil {
		return fmt.Errorf("cannot write configuration file: %w", err)
	}

	fmt.Printf("%s %s is now %s\n", successMark(), p, convertTo)
	return nil
}

// mustCompact renders a value as single-line JSON for status output.
func mustCompact(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(fmt.Sprintf("%v", v))
	}
	return data
}
