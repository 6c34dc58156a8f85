package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tty "github.com/mattn/go-tty"

	"github.com/luckidea/SweRV-ISS/memory"
)

var errQuit = errors.New("issmem: quit")

// runInspector opens the controlling terminal in raw mode and drives a
// tiny line-oriented peek/poke loop over m: "r <addr>" reads a word, "w
// <addr> <value>" writes one, "q" exits. Raw mode is needed only so a
// single Ctrl-D or Ctrl-C reaches us without a pending newline.
func runInspector(m *memory.Memory) error {
	t, err := tty.Open()
	if err != nil {
		return fmt.Errorf("opening tty: %w", err)
	}
	defer t.Close()

	restore, err := t.Raw()
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer restore()

	out := t.Output()
	fmt.Fprintf(out, "issmem interactive session (%d bytes). commands: r <addr>, w <addr> <value>, q\r\n", m.Size())

	reader := bufio.NewReader(t.Input())
	var line strings.Builder
	for {
		fmt.Fprint(out, "> ")
		line.Reset()
		for {
			r, err := reader.ReadByte()
			if err != nil {
				return nil
			}
			if r == '\r' || r == '\n' {
				fmt.Fprint(out, "\r\n")
				break
			}
			if r == 3 || r == 4 { // Ctrl-C, Ctrl-D
				fmt.Fprint(out, "\r\n")
				return nil
			}
			line.WriteByte(r)
			fmt.Fprintf(out, "%c", r)
		}
		if err := dispatch(out, m, line.String()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func dispatch(out io.Writer, m *memory.Memory, cmd string) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "q", "quit":
		return errQuit
	case "r":
		if len(fields) != 2 {
			fmt.Fprintf(out, "usage: r <addr>\r\n")
			return nil
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 64)
		if err != nil {
			fmt.Fprintf(out, "bad address: %v\r\n", err)
			return nil
		}
		v, ok := m.ReadWord(addr)
		if !ok {
			fmt.Fprintf(out, "read failed: %v\r\n", m.LastError())
			return nil
		}
		fmt.Fprintf(out, "0x%x: 0x%08x\r\n", addr, v)
	case "w":
		if len(fields) != 3 {
			fmt.Fprintf(out, "usage: w <addr> <value>\r\n")
			return nil
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 64)
		if err != nil {
			fmt.Fprintf(out, "bad address: %v\r\n", err)
			return nil
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "0x"), 16, 64)
		if err != nil {
			fmt.Fprintf(out, "bad value: %v\r\n", err)
			return nil
		}
		if ok := m.WriteWord(0, addr, uint32(val)); !ok {
			fmt.Fprintf(out, "write failed: %v\r\n", m.LastError())
			return nil
		}
		fmt.Fprintf(out, "ok\r\n")
	default:
		fmt.Fprintf(out, "unknown command %q\r\n", fields[0])
	}
	return nil
}
