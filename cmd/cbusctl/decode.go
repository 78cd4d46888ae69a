package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/danmuck/cbusctl/internal/protocol"
	"github.com/danmuck/cbusctl/internal/protocol/frame"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "decode [frame...]",
		Short: "Decode GridConnect frames given as arguments or read from stdin",
		Example: `  cbusctl decode ':SB780N400003;'
  cat capture.log | cbusctl decode --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, raw := range args {
					if err := writeDecoded(out, raw, asJSON); err != nil {
						return err
					}
				}
				return nil
			}
			return decodeStream(cmd.InOrStdin(), out, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per frame")
	return cmd
}

// decodeStream tokenizes r exactly as the monitor would a serial port.
func decodeStream(r io.Reader, out io.Writer, asJSON bool) error {
	var tok frame.Tokenizer
	br := bufio.NewReader(r)
	buf := make([]byte, 512)
	for {
		n, err := br.Read(buf)
		for _, raw := range tok.Feed(buf[:n]) {
			if werr := writeDecoded(out, raw, asJSON); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func writeDecoded(out io.Writer, raw string, asJSON bool) error {
	msg, err := protocol.DecodeFrame(raw)
	if !asJSON {
		if err != nil {
			_, werr := fmt.Fprintf(out, "%s\terror: %v\n", raw, err)
			return werr
		}
		_, werr := fmt.Fprintf(out, "%s\t%s\n", raw, msg)
		return werr
	}
	record := map[string]any{"raw": raw}
	if err != nil {
		record["error"] = err.Error()
		record["kind"] = protocol.ErrorKind(err)
	} else {
		record["message"] = msg.Map()
		record["header"] = map[string]any{
			"major":  msg.Header.Major,
			"minor":  msg.Header.Minor,
			"can_id": msg.Header.CANID,
		}
	}
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", raw, err)
	}
	if _, err := fmt.Fprintf(out, "%s\n", line); err != nil {
		return err
	}
	return nil
}
