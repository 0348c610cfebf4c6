package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/scottcagno/bstmap/pkg/bst"
	"github.com/scottcagno/bstmap/pkg/util"
)

type benchConfig struct {
	n      int
	keyLen int
	seed   int64
}

func newBenchCmd() *cobra.Command {
	var conf benchConfig

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time put, get and remove over random string keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if conf.n < 1 {
				return fmt.Errorf("--n must be positive, got %d", conf.n)
			}
			if conf.keyLen < 1 {
				return fmt.Errorf("--key-len must be positive, got %d", conf.keyLen)
			}
			if limit := util.Keyspace(conf.keyLen); conf.n > limit {
				return fmt.Errorf("%w: --n %d exceeds the %d keys of length %d", util.ErrKeyspace, conf.n, limit, conf.keyLen)
			}
			return bench(cmd.OutOrStdout(), conf)
		},
	}
	benchCmd.Flags().IntVar(&conf.n, "n", 10000, "Number of keys")
	benchCmd.Flags().IntVar(&conf.keyLen, "key-len", 16, "Length of each random key")
	benchCmd.Flags().Int64Var(&conf.seed, "seed", 1, "Random seed")
	return benchCmd
}

func bench(w io.Writer, conf benchConfig) error {
	keys, err := util.NewRand(conf.seed).Strings(conf.n, conf.keyLen)
	if err != nil {
		return err
	}
	m := bst.NewOrdered[string, int]()

	phase := func(name string, op func(i int, key string) bool) error {
		defer util.TimeThis(util.Msg(name))
		start := time.Now()
		for i, key := range keys {
			if !op(i, key) {
				return fmt.Errorf("%s: unexpected result for key %q", name, key)
			}
		}
		d := time.Since(start)
		_, err := fmt.Fprintf(w, "%-6s %d ops in %v (%.0f ops/sec)\n", name, len(keys), d, util.Rate(len(keys), d))
		return err
	}

	if err := phase("put", func(i int, key string) bool {
		_, replaced := m.Put(key, i)
		return !replaced
	}); err != nil {
		return err
	}
	if err := phase("get", func(i int, key string) bool {
		v, ok := m.Get(key)
		return ok && v == i
	}); err != nil {
		return err
	}
	if err := phase("remove", func(i int, key string) bool {
		v, ok := m.Remove(key)
		return ok && v == i
	}); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "size   %d\n", m.Size())
	return err
}
