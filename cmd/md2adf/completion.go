package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2adf/adf"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"layout": {Values: adf.Layouts},
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta. Flags are sorted by name.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	sort.Slice(flags, func(i, j int) bool { return flags[i].Long < flags[j].Long })
	return flags
}

// getCommands returns the command registry for completion.
// Convert flags come from the same FlagSet the parser uses.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert markdown files to ADF JSON",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name: "config",
			Desc: "Print the effective configuration",
			Flags: []flagDef{
				{Long: "config", Short: "c", Type: flagFile, Desc: "config file name or path", FileGlob: "*.yaml,*.yml"},
			},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2adf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2adf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2adf completion fish > ~/.config/fish/completions/md2adf.fish")
}

// commandNames returns the names of cmds in registry order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// globExtensions turns "*.md,*.markdown" into ["md", "markdown"].
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
	}
	return exts
}

func generateBash(cmds []commandDef) string {
	var sb strings.Builder

	sb.WriteString("# bash completion for md2adf\n")
	sb.WriteString("_md2adf_completions() {\n")
	sb.WriteString("    local cur prev cmd\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	sb.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	fmt.Fprintf(&sb, "    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
	sb.WriteString("        return\n    fi\n\n")
	sb.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		if c.Name == "completion" {
			sb.WriteString("    completion)\n")
			sb.WriteString("        COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"${cur}\"))\n")
			sb.WriteString("        ;;\n")
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "    %s)\n", c.Name)
		sb.WriteString("        case \"${prev}\" in\n")
		for _, f := range c.Flags {
			var action string
			switch f.Type {
			case flagEnum:
				action = fmt.Sprintf("COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))", strings.Join(f.Values, " "))
			case flagFile:
				action = fmt.Sprintf("COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"${cur}\"))", strings.Join(globExtensions(f.FileGlob), "|"))
			case flagDir:
				action = "COMPREPLY=($(compgen -d -- \"${cur}\"))"
			default:
				continue
			}
			fmt.Fprintf(&sb, "        %s)\n            %s\n            return\n            ;;\n", bashFlagPattern(f), action)
		}
		sb.WriteString("        esac\n")

		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
		}
		sb.WriteString("        if [[ \"${cur}\" == -* ]]; then\n")
		fmt.Fprintf(&sb, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(words, " "))
		if c.TakesFiles {
			sb.WriteString("        else\n")
			fmt.Fprintf(&sb, "            COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"${cur}\") $(compgen -d -- \"${cur}\"))\n",
				strings.Join(globExtensions(c.FilePattern), "|"))
		}
		sb.WriteString("        fi\n")
		sb.WriteString("        ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n")
	sb.WriteString("shopt -s extglob\n")
	sb.WriteString("complete -F _md2adf_completions md2adf\n")
	return sb.String()
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

func generateZsh(cmds []commandDef) string {
	var sb strings.Builder

	sb.WriteString("#compdef md2adf\n\n")
	sb.WriteString("_md2adf() {\n")
	sb.WriteString("    local -a commands\n")
	sb.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	sb.WriteString("    )\n\n")
	sb.WriteString("    if (( CURRENT == 2 )); then\n")
	sb.WriteString("        _describe 'command' commands\n")
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")
	sb.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		if c.Name == "completion" {
			sb.WriteString("    completion)\n")
			sb.WriteString("        _values 'shell' bash zsh fish\n")
			sb.WriteString("        ;;\n")
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "    %s)\n", c.Name)
		sb.WriteString("        _arguments -s \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "            %s \\\n", zshFlagSpec(f))
		}
		if c.TakesFiles {
			globs := strings.ReplaceAll(c.FilePattern, ",", "|")
			fmt.Fprintf(&sb, "            '*:input:_files -g \"(%s)\"'\n", globs)
		} else {
			sb.WriteString("            && return\n")
		}
		sb.WriteString("        ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n\n")
	sb.WriteString("compdef _md2adf md2adf\n")
	return sb.String()
}

func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":%s:_files -g \"(%s)\"", f.Long, strings.ReplaceAll(f.FileGlob, ",", "|"))
	case flagDir:
		action = fmt.Sprintf(":%s:_files -/", f.Long)
	default:
		action = fmt.Sprintf(":%s:", f.Long)
	}

	desc := zshEscape(f.Desc)
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

// zshEscape makes s safe inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func generateFish(cmds []commandDef) string {
	var sb strings.Builder

	sb.WriteString("# fish completion for md2adf\n\n")
	sb.WriteString("function __fish_md2adf_needs_command\n")
	sb.WriteString("    set -l cmd (commandline -opc)\n")
	sb.WriteString("    test (count $cmd) -eq 1\n")
	sb.WriteString("end\n\n")
	sb.WriteString("function __fish_md2adf_using_command\n")
	sb.WriteString("    set -l cmd (commandline -opc)\n")
	sb.WriteString("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	sb.WriteString("end\n\n")
	sb.WriteString("complete -c md2adf -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&sb, "complete -c md2adf -n __fish_md2adf_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	sb.WriteString("complete -c md2adf -n '__fish_md2adf_using_command completion' -a 'bash zsh fish'\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_md2adf_using_command %s'", c.Name)
		if c.TakesFiles {
			fmt.Fprintf(&sb, "complete -c md2adf -n %s -F\n", cond)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2adf -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile, flagDir:
				line += " -r -F"
			case flagString, flagInt:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
