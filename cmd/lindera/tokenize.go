// Copyright 2021-2026 the Lindera-Go authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lindera "github.com/lindera/lindera-go"
)

func newTokenizeCmd() *cobra.Command {
	var (
		modeName   string
		outputName string
		dictPath   string
		userDict   string
		configPath string
		useMmap    bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Read lines from stdin and write tokens per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("mode") && cfg.Mode != "" {
				modeName = cfg.Mode
			}
			if !cmd.Flags().Changed("output") && cfg.Output != "" {
				outputName = cfg.Output
			}
			if !cmd.Flags().Changed("dict") && cfg.Dict != "" {
				dictPath = cfg.Dict
			}
			if !cmd.Flags().Changed("user-dict") && cfg.UserDict != "" {
				userDict = cfg.UserDict
			}

			mode, err := lindera.ParseMode(modeName)
			if err != nil {
				return err
			}
			format, err := lindera.ParseOutputFormat(outputName)
			if err != nil {
				return err
			}

			var opts []lindera.LoadOption
			if useMmap {
				opts = append(opts, lindera.WithMmap())
			}
			start := time.Now()
			d, err := lindera.LoadDictionary(dictPath, opts...)
			if err != nil {
				return err
			}
			defer d.Close() //nolint:errcheck // process is exiting
			logger.Debug("dictionary loaded",
				zap.String("name", d.Name()),
				zap.Duration("elapsed", time.Since(start)))

			if userDict == "" {
				userDict = os.Getenv(lindera.EnvUserDictPath)
			}
			var user *lindera.UserDictionary
			if userDict != "" {
				if user, err = d.LoadUserDictionary(userDict); err != nil {
					return err
				}
			}

			seg := lindera.NewSegmenter(mode, d, user)
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush() //nolint:errcheck // flushed again below
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				tokens := seg.Segment(scanner.Text())
				rendered, err := lindera.Format(tokens, format)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, rendered)
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			return out.Flush()
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "normal", "tokenization mode (normal|decompose)")
	cmd.Flags().StringVarP(&outputName, "output", "o", "mecab", "output format (mecab|wakati|json)")
	cmd.Flags().StringVarP(&dictPath, "dict", "d", "", "dictionary directory (falls back to $"+lindera.EnvDictPath+")")
	cmd.Flags().StringVarP(&userDict, "user-dict", "u", "", "user dictionary file (.csv or compiled binary)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file supplying flag defaults")
	cmd.Flags().BoolVar(&useMmap, "mmap", false, "memory-map dictionary blobs instead of copying them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
