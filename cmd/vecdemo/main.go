// Command vecdemo pushes the integers 0..count-1 into a vec.Array of int32,
// prints them by index, then pops and prints them again in reverse.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/adobaai/vec"
)

const int32Size = 4

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "vecdemo")
	if err := newRootCmd().Execute(); err != nil {
		log.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:           "vecdemo",
		Short:         "push, read and pop integers through a vec.Array",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative: %d", count)
			}
			return run(cmd.OutOrStdout(), count)
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of integers to push")
	return cmd
}

func run(w io.Writer, count int) (err error) {
	a := vec.New(int32Size)
	defer a.Drop()

	for _, i := range lo.Range(count) {
		multierr.AppendInto(&err, a.Push(binary.NativeEndian.AppendUint32(nil, uint32(int32(i)))))
	}

	out := make([]byte, int32Size)
	for i := range a.Len() {
		if multierr.AppendInto(&err, a.Get(i, out)) {
			continue
		}
		fmt.Fprintln(w, int32(binary.NativeEndian.Uint32(out)))
	}

	for range count {
		if multierr.AppendInto(&err, a.Pop(out)) {
			continue
		}
		fmt.Fprintln(w, int32(binary.NativeEndian.Uint32(out)))
	}
	return err
}
