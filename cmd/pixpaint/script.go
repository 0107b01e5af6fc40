package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/esimov/pixpaint/palette"
	"github.com/esimov/pixpaint/session"
)

// readScript starts a goroutine reading the action script line by line and
// sending the parsed actions on the returned channel. The first error, if
// any, is sent on the error channel once the actions channel is closed.
// The goroutine stops early when the done channel is closed.
func readScript(done <-chan struct{}, r io.Reader) (<-chan session.Action, <-chan error) {
	actions := make(chan session.Action)
	errc := make(chan error, 1)

	go func() {
		defer close(actions)

		errc <- func() error {
			scanner := bufio.NewScanner(r)
			for n := 1; scanner.Scan(); n++ {
				a, err := parseAction(scanner.Text())
				if err != nil {
					return fmt.Errorf("line %d: %w", n, err)
				}
				if a == nil {
					continue
				}
				select {
				case <-done:
					return nil
				case actions <- a:
				}
			}
			return scanner.Err()
		}()
	}()
	return actions, errc
}

// parseAction parses a single script line. Blank lines, lines starting with
// '#' and anything after "//" yield no action.
//
//	bg <preset|#hex>
//	down <x> <y>
//	drag <x> <y>
//	move <x> <y>
//	quit
func parseAction(line string) (session.Action, error) {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil, nil
	}

	switch verb := strings.ToLower(fields[0]); verb {
	case "bg", "background":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s expects a color", verb)
		}
		c, err := palette.Parse(fields[1])
		if err != nil {
			return nil, err
		}
		return session.SetBackground{Color: c}, nil
	case "down", "press", "drag", "move":
		p, err := parsePoint(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", verb, err)
		}
		switch verb {
		case "drag":
			return session.PointerDrag{Point: p}, nil
		case "move":
			return session.PointerMove{Point: p}, nil
		default:
			return session.PointerDown{Point: p}, nil
		}
	case "quit":
		return session.Quit{}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", fields[0])
	}
}

func parsePoint(args []string) (image.Point, error) {
	if len(args) != 2 {
		return image.Point{}, fmt.Errorf("expected x and y coordinates, got %d values", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid x coordinate: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid y coordinate: %w", err)
	}
	return image.Pt(x, y), nil
}
