// Package console runs the interactive encode/decode menu for one session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"huffman_codec_go/internal/service"
)

// SaveFunc persists the packed bytes of an encoded session.
type SaveFunc func(name string, packed []byte) error

const menu = `Enter 1 for encode the input String
Enter 2 for decode the input String
Enter 3 for Exit

Enter Your Choice
`

// Run prints the session's code table and serves the menu until the user
// picks exit or in is exhausted.
func Run(ctx context.Context, svc *service.SessionService, id string, in io.Reader, out io.Writer, save SaveFunc) error {
	sess, err := svc.GetByID(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sess.Codec.InOrder())
	for _, e := range sess.Codec.Codes().Entries() {
		fmt.Fprintf(out, "%c->%s\n", e.Char, e.Code)
	}

	// written tracks the save, not the encode: a failed save is retried on
	// the next "1" with the artifact Encode already stored.
	written := false
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, menu)
		if !sc.Scan() {
			return sc.Err()
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			if written {
				continue
			}
			a, err := svc.Encode(ctx, id)
			if err != nil {
				fmt.Fprintf(out, "Encode failed: %v\n", err)
				continue
			}
			if err := save(sess.Name, a.Packed); err != nil {
				fmt.Fprintf(out, "Error writing to file: %v\n", err)
				continue
			}
			written = true
			fmt.Fprintln(out, "FILE COMPRESSION SUCCESSFUL")
		case "2":
			text, err := svc.Decode(ctx, id, nil)
			switch {
			case errors.Is(err, service.ErrDecodeBeforeEncode):
				fmt.Fprintln(out, "Please First Encode The Text")
			case err != nil:
				fmt.Fprintf(out, "Decode failed: %v\n", err)
			default:
				fmt.Fprintf(out, "Decoded Text : %s\n", text)
			}
		case "3":
			fmt.Fprintln(out, "Thank You")
			return nil
		default:
			fmt.Fprintln(out, "Enter a Valid Choice")
		}
	}
}
