package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
	"github.com/scriptsmith/scriptsync/internal/sync"
)

// terminalPrompter answers prompts interactively. Answers supplied up front
// via flags (type, bump) short-circuit the corresponding prompt.
type terminalPrompter struct {
	in       *bufio.Reader
	defaults *sync.AutoPrompter
}

func newTerminalPrompter(defaults *sync.AutoPrompter) *terminalPrompter {
	return &terminalPrompter{
		in:       bufio.NewReader(os.Stdin),
		defaults: defaults,
	}
}

func (p *terminalPrompter) SelectScripts(action string, items []sync.Item) ([]sync.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}
	return runSelectTUI(action, items)
}

func (p *terminalPrompter) ConfirmConflict(item sync.Item) (bool, error) {
	if p.defaults.ApplyConflicts {
		return true, nil
	}
	fmt.Printf("%s %s: %s\n", red("conflict"), item.Name, item.Reason)
	answer, err := p.ask(fmt.Sprintf("apply %s anyway? [y/N] ", item.Name))
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

func (p *terminalPrompter) PickType(name string) (scriptmeta.ScriptType, error) {
	if p.defaults.DefaultType.Valid() {
		return p.defaults.DefaultType, nil
	}
	for {
		answer, err := p.ask(fmt.Sprintf("type for %s (widget/helper/script): ", cyan(name)))
		if err != nil {
			return "", err
		}
		typ, err := scriptmeta.ParseScriptType(answer)
		if err != nil {
			fmt.Println(red(err.Error()))
			continue
		}
		return typ, nil
	}
}

func (p *terminalPrompter) PickBump(name string, current scriptmeta.Version) (scriptmeta.BumpKind, error) {
	if p.defaults.DefaultBump != "" {
		return p.defaults.DefaultBump, nil
	}
	for {
		answer, err := p.ask(fmt.Sprintf("bump for %s at %s [patch/minor/major, default patch]: ", cyan(name), current))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return scriptmeta.BumpPatch, nil
		}
		kind, err := scriptmeta.ParseBumpKind(answer)
		if err != nil {
			fmt.Println(red(err.Error()))
			continue
		}
		return kind, nil
	}
}

func (p *terminalPrompter) ask(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var _ sync.Prompter = (*terminalPrompter)(nil)
