// Package shell runs the interactive keg tracker menu over injected
// reader/writer endpoints.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zulandar/taproom/internal/tracker"
)

// Shell drives one interactive session. Input parsing failures are
// reported and return to the menu; nothing here terminates the process.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	tracker *tracker.Tracker
	units   string
}

// New creates a Shell reading menu choices from in and writing to out.
func New(in io.Reader, out io.Writer, tr *tracker.Tracker, units string) *Shell {
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		tracker: tr,
		units:   units,
	}
}

// Run loops over the menu until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Keg Tracker Menu:")
		fmt.Fprintln(s.out, "1. Add new keg")
		fmt.Fprintln(s.out, "2. Update keg volume")
		fmt.Fprintln(s.out, "3. List all kegs")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			fmt.Fprintln(s.out, "Exiting...")
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.addKeg()
		case "2":
			s.updateKeg()
		case "3":
			s.listKegs()
		case "4":
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// prompt prints a prompt and reads one trimmed line. ok is false when
// input is exhausted.
func (s *Shell) prompt(text string) (line string, ok bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) addKeg() {
	beerType, ok := s.prompt("Enter beer type: ")
	if !ok {
		return
	}

	raw, ok := s.prompt(fmt.Sprintf("Enter keg size (%s): ", s.units))
	if !ok {
		return
	}
	size, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %q is not a number.\n", raw)
		return
	}

	location, ok := s.prompt("Enter location: ")
	if !ok {
		return
	}

	if _, err := s.tracker.Add(tracker.AddOpts{BeerType: beerType, Size: size, Location: location}); err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	fmt.Fprintln(s.out, "Keg added successfully!")
}

func (s *Shell) updateKeg() {
	rawID, ok := s.prompt("Enter keg ID: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %q is not a keg ID.\n", rawID)
		return
	}

	rawVolume, ok := s.prompt(fmt.Sprintf("Enter new volume (%s): ", s.units))
	if !ok {
		return
	}
	volume, err := strconv.ParseFloat(rawVolume, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %q is not a number.\n", rawVolume)
		return
	}

	if err := s.tracker.UpdateVolume(uint(id), volume); err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	fmt.Fprintln(s.out, "Keg updated successfully!")
}

func (s *Shell) listKegs() {
	kegs, err := s.tracker.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	if len(kegs) == 0 {
		fmt.Fprintln(s.out, "No kegs in the system.")
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Current Kegs:")
	WriteTable(s.out, kegs)
}
