package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/danmuck/cbusctl/internal/config"
	"github.com/danmuck/cbusctl/internal/protocol/command"
	"github.com/danmuck/cbusctl/internal/transport"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("usage")

type encodeFlags struct {
	long       bool
	reverse    bool
	canID      uint8
	nodeNumber uint16
	send       bool
}

type encoder struct {
	bits  []int
	usage string
	build func(b command.Builder, f encodeFlags, v []uint64) (string, error)
}

var encoders = map[string]encoder{
	"discover": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.Discover()
	}},
	"params": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.RequestNodeParameters()
	}},
	"name": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.RequestModuleName()
	}},
	"param": {[]int{16, 8}, "<node> <index>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.ReadNodeParameter(uint16(v[0]), uint8(v[1]))
	}},
	"status": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.RequestStatus()
	}},
	"track-on": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.TrackOn()
	}},
	"track-off": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.TrackOff()
	}},
	"estop": {nil, "", func(b command.Builder, _ encodeFlags, _ []uint64) (string, error) {
		return b.EmergencyStopAll()
	}},
	"alloc": {[]int{16}, "<address>", func(b command.Builder, f encodeFlags, v []uint64) (string, error) {
		return b.AllocateLoco(uint16(v[0]), f.long)
	}},
	"steal": {[]int{16}, "<address>", func(b command.Builder, f encodeFlags, v []uint64) (string, error) {
		return b.StealLoco(uint16(v[0]), f.long)
	}},
	"share": {[]int{16}, "<address>", func(b command.Builder, f encodeFlags, v []uint64) (string, error) {
		return b.ShareLoco(uint16(v[0]), f.long)
	}},
	"release": {[]int{8}, "<session>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.ReleaseLoco(uint8(v[0]))
	}},
	"keepalive": {[]int{8}, "<session>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.KeepAlive(uint8(v[0]))
	}},
	"query": {[]int{8}, "<session>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.QueryLoco(uint8(v[0]))
	}},
	"mode": {[]int{8, 8}, "<session> <mode>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.SetSessionMode(uint8(v[0]), uint8(v[1]))
	}},
	"speed": {[]int{8, 8}, "<session> <step>", func(b command.Builder, f encodeFlags, v []uint64) (string, error) {
		return b.SetSpeed(uint8(v[0]), uint8(v[1]), !f.reverse)
	}},
	"stop": {[]int{8}, "<session>", func(b command.Builder, f encodeFlags, v []uint64) (string, error) {
		return b.EmergencyStopLoco(uint8(v[0]), !f.reverse)
	}},
	"fgroup": {[]int{8, 8, 8}, "<session> <group> <mask>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.SetFunctionGroup(uint8(v[0]), uint8(v[1]), uint8(v[2]))
	}},
	"fon": {[]int{8, 8}, "<session> <function>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.FunctionOn(uint8(v[0]), uint8(v[1]))
	}},
	"foff": {[]int{8, 8}, "<session> <function>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.FunctionOff(uint8(v[0]), uint8(v[1]))
	}},
	"acc-on": {[]int{32}, "<event>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.AccessoryOn(uint32(v[0]))
	}},
	"acc-off": {[]int{32}, "<event>", func(b command.Builder, _ encodeFlags, v []uint64) (string, error) {
		return b.AccessoryOff(uint32(v[0]))
	}},
}

func encoderNames() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	var f encodeFlags
	cmd := &cobra.Command{
		Use:   "encode <command> [args...]",
		Short: "Build a command frame",
		Long: "Build a command frame. Numbers accept decimal or 0x-prefixed hex.\n\nCommands: " +
			strings.Join(encoderNames(), ", "),
		Example: `  cbusctl encode alloc 3 --long
  cbusctl encode speed 1 40 --reverse --send`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := encodeBuilder(cmd, opts, f)
			if err != nil {
				return err
			}
			raw, err := encodeCommand(b, f, args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			if !f.send {
				return nil
			}
			return sendOnce(opts.configPath, raw)
		},
	}
	cmd.Flags().BoolVar(&f.long, "long", false, "use a long (14-bit) DCC address")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "set reverse direction for speed commands")
	cmd.Flags().Uint8Var(&f.canID, "can-id", 0, "CAN ID for the header (overrides config)")
	cmd.Flags().Uint16Var(&f.nodeNumber, "node-number", 0, "node number for short events (overrides config)")
	cmd.Flags().BoolVar(&f.send, "send", false, "write the frame to the configured serial port")
	return cmd
}

// encodeBuilder starts from the config file when one is readable, then applies flags.
func encodeBuilder(cmd *cobra.Command, opts *rootOptions, f encodeFlags) (command.Builder, error) {
	b := config.Default().Builder()
	if cfg, err := config.Load(opts.configPath); err == nil {
		b = cfg.Builder()
	} else if f.send || cmd.Flags().Changed("config") {
		return command.Builder{}, err
	}
	if cmd.Flags().Changed("can-id") {
		b.CANID = f.canID
	}
	if cmd.Flags().Changed("node-number") {
		b.NodeNumber = f.nodeNumber
	}
	return b, nil
}

func encodeCommand(b command.Builder, f encodeFlags, name string, args []string) (string, error) {
	enc, ok := encoders[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if len(args) != len(enc.bits) {
		return "", fmt.Errorf("%w: %s %s", errUsage, name, enc.usage)
	}
	values := make([]uint64, len(args))
	for i, raw := range args {
		v, err := strconv.ParseUint(raw, 0, enc.bits[i])
		if err != nil {
			return "", fmt.Errorf("%w: argument %d of %s: %v", errUsage, i+1, name, err)
		}
		values[i] = v
	}
	return enc.build(b, f, values)
}

func sendOnce(path, raw string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	port, err := transport.OpenSerial(cfg.SerialConfig())
	if err != nil {
		return err
	}
	conn := transport.NewConn(port)
	defer conn.Close()
	return conn.Send(raw)
}
