// cmd/scangen/main.go
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// directivePrefix marks a registration directive on a type declaration.
const directivePrefix = "//scanreg:register"

// service is one annotated type, parsed from its directive.
type service struct {
	TypeName   string
	Lifetime   string // "", "scoped" or "singleton"; empty means transient
	Skip       bool
	Self       bool
	Implements []string
	Contracts  []string
}

// genService is a service prepared for the template: marker construction and
// interface references rendered as Go expressions.
type genService struct {
	TypeName   string
	MarkerExpr string
	IfaceRefs  []string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package       string
	Module        string
	PackageOrigin bool
	Services      []genService
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("scangen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	dir := flags.String("dir", ".", "package directory to scan for //scanreg:register directives")
	outPath := flags.String("out", "", "output .gen.go file path (default <dir>/scanreg.gen.go)")
	moduleName := flags.String("module", "", "module name (default: the package name)")
	origin := flags.String("origin", "project", "module origin: project or package")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *origin != "project" && *origin != "package" {
		_, _ = fmt.Fprintln(stderr, "scangen: -origin must be project or package")
		return 2
	}

	pkgName, services, err := scanPackage(*dir)
	must(err)

	if len(services) == 0 {
		_, _ = fmt.Fprintf(stderr, "scangen: no %s directives found in %s\n", directivePrefix, *dir)
		return 1
	}

	name := *moduleName
	if name == "" {
		name = pkgName
	}

	data := templateData{
		Package:       pkgName,
		Module:        name,
		PackageOrigin: *origin == "package",
	}
	for _, svc := range services {
		data.Services = append(data.Services, genService{
			TypeName:   svc.TypeName,
			MarkerExpr: renderMarker(svc),
			IfaceRefs:  renderIfaceRefs(svc),
		})
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	target := *outPath
	if target == "" {
		target = filepath.Join(*dir, "scanreg.gen.go")
	}
	must(writeFileAtomic(filepath.Clean(target), []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// scanPackage parses every non-test, non-generated Go file in dir and
// collects annotated type declarations in a stable order (by file, then by
// position).
func scanPackage(dir string) (pkgName string, services []service, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, err
	}

	var names []string
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() ||
			!strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}
		names = append(names, fileName)
	}
	sort.Strings(names)

	fileSet := token.NewFileSet()
	for _, fileName := range names {
		parsedFile, parseErr := parser.ParseFile(fileSet, filepath.Join(dir, fileName), nil, parser.ParseComments)
		if parseErr != nil {
			return "", nil, parseErr
		}
		if pkgName == "" {
			pkgName = parsedFile.Name.Name
		}

		fileServices, fileErr := collectServices(parsedFile)
		if fileErr != nil {
			return "", nil, fmt.Errorf("%s: %w", fileName, fileErr)
		}
		services = append(services, fileServices...)
	}

	return pkgName, services, nil
}

// collectServices extracts annotated type declarations from one parsed file.
func collectServices(parsedFile *ast.File) ([]service, error) {
	var services []service

	for _, declaration := range parsedFile.Decls {
		genDecl, ok := declaration.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// A directive sits either on the type spec itself or, for the
			// common single-type declaration, on the enclosing decl.
			line := directiveLine(typeSpec.Doc)
			if line == "" {
				line = directiveLine(genDecl.Doc)
			}
			if line == "" {
				continue
			}

			svc, err := parseDirective(typeSpec.Name.Name, line)
			if err != nil {
				return nil, err
			}
			services = append(services, svc)
		}
	}

	return services, nil
}

// directiveLine returns the first scanreg:register line of a comment group.
func directiveLine(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	for _, comment := range doc.List {
		text := comment.Text
		if text == directivePrefix || strings.HasPrefix(text, directivePrefix+" ") {
			return text
		}
	}
	return ""
}

// parseDirective parses the token list after the directive prefix.
func parseDirective(typeName, line string) (service, error) {
	svc := service{TypeName: typeName}

	for _, tok := range strings.Fields(strings.TrimPrefix(line, directivePrefix)) {
		key, value, _ := strings.Cut(tok, "=")

		switch key {
		case "self":
			svc.Self = true
		case "skip":
			svc.Skip = true
		case "lifetime":
			switch value {
			case "transient":
				svc.Lifetime = ""
			case "scoped", "singleton":
				svc.Lifetime = value
			default:
				return service{}, fmt.Errorf("type %s: unknown lifetime %q", typeName, value)
			}
		case "implements":
			svc.Implements = splitList(value)
		case "contracts":
			svc.Contracts = splitList(value)
		default:
			return service{}, fmt.Errorf("type %s: unknown directive key %q", typeName, key)
		}
	}

	// Mirror the resolver's contract validation at generation time: every
	// explicit contract must be a declared interface or the type itself.
	for _, contract := range svc.Contracts {
		if contract == typeName || containsString(svc.Implements, contract) {
			continue
		}
		return service{}, fmt.Errorf(
			"type %s: contract %s is neither the type itself nor listed in implements", typeName, contract)
	}

	return svc, nil
}

// renderMarker renders the registry.NewMarker expression for one service.
func renderMarker(svc service) string {
	var opts []string
	if svc.Lifetime == "scoped" {
		opts = append(opts, "registry.WithLifetime(registry.Scoped)")
	}
	if svc.Lifetime == "singleton" {
		opts = append(opts, "registry.WithLifetime(registry.Singleton)")
	}
	if svc.Skip {
		opts = append(opts, "registry.WithoutAutoRegister()")
	}
	if svc.Self {
		opts = append(opts, "registry.WithRegisterSelf()")
	}
	if len(svc.Contracts) > 0 {
		refs := make([]string, 0, len(svc.Contracts))
		for _, contract := range svc.Contracts {
			refs = append(refs, "(*"+contract+")(nil)")
		}
		opts = append(opts, "registry.WithContracts("+strings.Join(refs, ", ")+")")
	}

	if len(opts) == 0 {
		return "registry.NewMarker()"
	}
	return "registry.NewMarker(" + strings.Join(opts, ", ") + ")"
}

// renderIfaceRefs renders the declared-interface references for one service.
func renderIfaceRefs(svc service) []string {
	refs := make([]string, 0, len(svc.Implements))
	for _, iface := range svc.Implements {
		refs = append(refs, "(*"+iface+")(nil)")
	}
	return refs
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

// genTemplate is the Go source template for the generated registration file.
var genTemplate = template.Must(
	template.New("scangen").Parse(`// Code generated by scangen; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/sghaida/scanreg/registry"
)

func init() {
	m := registry.NewModule({{printf "%q" .Module}}{{if .PackageOrigin}}, registry.WithOrigin(registry.OriginPackage){{end}})
{{- range .Services}}
	m.MustDescribe(&{{.TypeName}}{}, {{.MarkerExpr}}{{range .IfaceRefs}}, {{.}}{{end}})
{{- end}}
	registry.MustInstall(m)
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
