package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sansui233/Fontscape"
	"github.com/Sansui233/Fontscape/scan"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object. It holds the state of the latest scan.
type Intp struct {
	ctx    context.Context
	repl   *readline.Instance
	result *scan.Result
}

func newIntp(ctx context.Context) (*Intp, error) {
	intp := &Intp{ctx: ctx}
	if err := intp.rescan(); err != nil {
		return nil, err
	}
	repl, err := readline.New("fontscape > ")
	if err != nil {
		return nil, err
	}
	intp.repl = repl
	return intp, nil
}

func (intp *Intp) String() string {
	if intp == nil || intp.result == nil {
		return "( no scan )"
	}
	return fmt.Sprintf("( %d fonts, %d families )", intp.result.State.FontCount(),
		intp.result.State.FamilyCount())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) rescan() error {
	res, err := runScan(intp.ctx)
	if err != nil {
		return err
	}
	intp.result = res
	tracer().Infof("scan %s: %d fonts", res.ScanID, res.State.FontCount())
	return nil
}

type Op struct {
	code int
	arg  string
}

const NOOP = -1
const (
	// op-codes QUIT and RESCAN will not have arguments
	QUIT int = iota
	RESCAN
	// op-codes below may have arguments
	HELP
	FAMILIES
	FAMILY
	FONTS
	FONT
	CHECK
)

var opMap = map[string]int{
	"quit":     QUIT,
	"exit":     QUIT,
	"rescan":   RESCAN,
	"help":     HELP,
	"families": FAMILIES,
	"family":   FAMILY,
	"fonts":    FONTS,
	"font":     FONT,
	"check":    CHECK,
}

var opNames = []string{
	"quit",
	"rescan",
	"help",
	"families",
	"family",
	"fonts",
	"font",
	"check",
}

// parseCommand splits a line into an op-code and its argument, e.g.
// "family Noto Sans". Unknown commands are turned into a request for help.
func parseCommand(line string) *Op {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		tracer().Infof("unknown command %q", word)
		return &Op{code: HELP}
	}
	op := &Op{code: code}
	if code > RESCAN {
		op.arg = strings.TrimSpace(arg)
	}
	tracer().Debugf("parsed command: %s %q", opNames[code], op.arg)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	RESCAN:   rescanOp,
	HELP:     helpOp,
	FAMILIES: familiesOp,
	FAMILY:   familyOp,
	FONTS:    fontsOp,
	FONT:     fontOp,
	CHECK:    checkOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	if op == nil || op.code == NOOP {
		return nil, false
	}
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func rescanOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.rescan(); err != nil {
		return err, false
	}
	printSummary(intp.result)
	return nil, false
}

func familiesOp(intp *Intp, op *Op) (error, bool) {
	fams := intp.result.State.Families()
	if op.arg != "" { // filter by substring
		needle := strings.ToLower(op.arg)
		fams = filterFamilies(fams, func(f fontscape.CssFontFamily) bool {
			return strings.Contains(strings.ToLower(f.Name), needle)
		})
	}
	renderTable(familyData(fams))
	return nil, false
}

func familyOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return ErrMissingArg, false
	}
	fam, ok := intp.result.State.Family(op.arg)
	if !ok {
		return fmt.Errorf("no font family %q", op.arg), false
	}
	printFamily(fam, intp.result.State.FontsByCssFamily(fam.Name))
	return nil, false
}

func fontsOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		renderTable(fontListData(intp.result.State.Fonts()))
	} else {
		renderTable(fontListData(intp.result.State.FontsByCssFamily(op.arg)))
	}
	return nil, false
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return ErrMissingArg, false
	}
	rec, err := findFont(intp.result.State, op.arg)
	if err != nil {
		return err, false
	}
	renderTable(fontDetailData(rec))
	return nil, false
}

func checkOp(intp *Intp, op *Op) (error, bool) {
	path, text, ok := strings.Cut(op.arg, " ")
	if !ok || path == "" || text == "" {
		return errors.New("usage: check FILE TEXT"), false
	}
	checks, err := checkFile(path, text)
	if err != nil {
		return err, false
	}
	renderTable(checkData(checks))
	return nil, false
}

// ----------------------------------------------------------------------

var ErrMissingArg = errors.New("command needs an argument")
var ErrAmbiguousID = errors.New("ambiguous font ID")

// findFont looks up a font by ID or by an unambiguous ID prefix.
func findFont(state *fontscape.ScanState, id string) (fontscape.FontRecord, error) {
	if rec, ok := state.Font(id); ok {
		return rec, nil
	}
	var found []fontscape.FontRecord
	for _, f := range state.Fonts() {
		if strings.HasPrefix(f.ID, id) {
			found = append(found, f)
		}
	}
	switch len(found) {
	case 0:
		return fontscape.FontRecord{}, fmt.Errorf("no font with id %s", id)
	case 1:
		return found[0], nil
	}
	return fontscape.FontRecord{}, fmt.Errorf("%w: %s matches %d fonts", ErrAmbiguousID, id, len(found))
}

func filterFamilies(fams []fontscape.CssFontFamily, keep func(fontscape.CssFontFamily) bool) []fontscape.CssFontFamily {
	var result []fontscape.CssFontFamily
	for _, f := range fams {
		if keep(f) {
			result = append(result, f)
		}
	}
	return result
}
