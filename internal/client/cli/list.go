package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/listview"
)

// listSession drives one interactive list view: it loads the collection,
// prints the current page, and interprets paging, search and delete commands
// until the user goes back.
//
// extra, when non-nil, gets a chance at commands the generic loop does not
// know; it returns true when it handled the command.
type listSession[T any] struct {
	view   *listview.View[T]
	reader *bufio.Reader
	render func(T) string
	empty  string
	extra  func(ctx context.Context, cmd string, args []string) bool
}

func (l *listSession[T]) run(ctx context.Context) error {
	if err := l.view.Load(ctx); err != nil {
		log.Printf("error loading list: %v", err)
		return err
	}
	l.print()

	for {
		line, err := GetSimpleText(l.reader, "list> ", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			l.print()
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Commands: search <text>, clear, next, prev, page <n>, refresh, delete <id>, back")

		case "s", "search":
			l.view.Search(strings.Join(args, " "))

		case "clear":
			l.view.Search("")

		case "n", "next":
			l.view.NextPage()

		case "p", "prev":
			l.view.PrevPage()

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: page <n>")
				continue
			}
			l.view.SetPage(n)

		case "r", "refresh":
			if err := l.view.Load(ctx); err != nil {
				log.Printf("error reloading list: %v", err)
			}

		case "del", "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			confirm, err := GetSimpleText(l.reader, fmt.Sprintf("Delete %s? (y/n): ", args[0]), os.Stdout)
			if err != nil {
				return err
			}
			if !yes(confirm, false) {
				continue
			}
			if err := l.view.Delete(ctx, args[0]); err != nil {
				log.Printf("Delete failed: %v", err)
			} else {
				printlnFn("Deleted.")
			}

		case "back", "b":
			return nil

		default:
			if l.extra != nil && l.extra(ctx, cmd, args) {
				break
			}
			printlnFn("Unknown command:", cmd)
			continue
		}
		l.print()
	}
}

func (l *listSession[T]) print() {
	if l.view.Len() == 0 {
		printlnFn(l.empty)
		return
	}
	if len(l.view.Filtered()) == 0 {
		printlnFn("No matches.")
		return
	}
	items := l.view.PageItems()
	printlnFn(fmt.Sprintf("page %d/%d, showing %d of %d items",
		l.view.Page(), l.view.TotalPages(), len(items), len(l.view.Filtered())))
	for _, it := range items {
		printlnFn(l.render(it))
	}
}
