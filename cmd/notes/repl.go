package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/notekeeper/pkg/core"
)

const (
	promptCommand = "Enter command (add/edit/delete/show/exit): "
	promptTitle   = "Enter note title: "
	promptBody    = "Enter note body: "
	promptEditID  = "Enter note ID to edit: "
	promptNewTtl  = "Enter new note title: "
	promptNewBody = "Enter new note body: "
	promptDelID   = "Enter note ID to delete: "
	promptDate    = "Enter date to filter by (yyyy-mm-dd): "

	msgSaved    = "Note saved successfully"
	msgEdited   = "Note edited successfully"
	msgNotFound = "Note with this ID not found"
	msgDeleted  = "Note deleted successfully"
	msgInvalid  = "Invalid command. Please try again."
	msgBadID    = "Invalid ID: expected an integer."
)

// repl is the interactive command loop.
type repl struct {
	store *core.Store
	in    *bufio.Scanner
	out   io.Writer
}

func newREPL(store *core.Store, in io.Reader, out io.Writer) *repl {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return &repl{store: store, in: scanner, out: out}
}

// Run reads commands until "exit" or end of input.
// Store errors end the loop.
func (r *repl) Run(ctx context.Context) error {
	for {
		line, ok := r.ask(promptCommand)
		if !ok {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "add":
			err = r.add(ctx)
		case "edit":
			err = r.edit(ctx)
		case "delete":
			err = r.delete(ctx)
		case "show":
			r.show()
		case "exit":
			return nil
		default:
			fmt.Fprintln(r.out, msgInvalid)
		}

		if err == io.EOF {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		if err != nil {
			return err
		}
	}
}

// ask prints prompt and reads one line. ok is false at end of input.
func (r *repl) ask(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

// askID reads an integer id; valid is false when the input is not a number.
func (r *repl) askID(prompt string) (id int, valid bool, err error) {
	line, ok := r.ask(prompt)
	if !ok {
		return 0, false, io.EOF
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		fmt.Fprintln(r.out, msgBadID)
		return 0, false, nil
	}
	return id, true, nil
}

func (r *repl) add(ctx context.Context) error {
	title, ok := r.ask(promptTitle)
	if !ok {
		return io.EOF
	}
	body, ok := r.ask(promptBody)
	if !ok {
		return io.EOF
	}

	if _, err := r.store.Add(ctx, title, body); err != nil {
		return err
	}
	fmt.Fprintln(r.out, msgSaved)
	return nil
}

func (r *repl) edit(ctx context.Context) error {
	id, valid, err := r.askID(promptEditID)
	if err != nil || !valid {
		return err
	}
	title, ok := r.ask(promptNewTtl)
	if !ok {
		return io.EOF
	}
	body, ok := r.ask(promptNewBody)
	if !ok {
		return io.EOF
	}

	found, err := r.store.Edit(ctx, id, title, body)
	if err != nil {
		return err
	}
	if found {
		fmt.Fprintln(r.out, msgEdited)
	} else {
		fmt.Fprintln(r.out, msgNotFound)
	}
	return nil
}

func (r *repl) delete(ctx context.Context) error {
	id, valid, err := r.askID(promptDelID)
	if err != nil || !valid {
		return err
	}

	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(r.out, msgDeleted)
	return nil
}

func (r *repl) show() {
	date, ok := r.ask(promptDate)
	if !ok {
		return
	}
	printNotes(r.out, r.store.List(strings.TrimSpace(date)))
}
