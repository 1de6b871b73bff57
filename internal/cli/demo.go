/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"

	"dirpx.dev/errkit"
	"dirpx.dev/errkit/code"
	"dirpx.dev/errkit/errno"
	"dirpx.dev/errkit/grpcx/server"
)

// ConfigEnv is the environment variable consulted by the config flow.
const ConfigEnv = "ERRKIT_DEMO_CONFIG"

// demoConfig is the file read by the config flow.
type demoConfig struct {
	Name string `yaml:"name"`
}

type demo struct {
	out    io.Writer
	logger *zap.Logger
	dir    string
	flag   errno.Flag
}

var flows = []string{"read", "parse", "mkdir", "config", "rpc"}

// NewDemoCmd returns the demo subcommand running the boundary helpers
// against real failures.
func NewDemoCmd(logger *zap.Logger) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "demo [flow...]",
		Short:     "Run sample flows through the errkit boundaries",
		Long:      "Run sample flows (read, parse, mkdir, config, rpc) and print the resulting errors.\nWithout arguments every flow runs.",
		ValidArgs: flows,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = flows
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			d := &demo{out: cmd.OutOrStdout(), logger: logger, dir: dir}
			for _, flow := range args {
				_, _ = fmt.Fprintf(d.out, "== %s\n", flow)
				d.run(flow)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", filepath.Join(os.TempDir(), "errkit-demo"), "Scratch directory used by the file flows")

	return cmd
}

func (d *demo) run(flow string) {
	switch flow {
	case "read":
		d.read()
	case "parse":
		d.parse()
	case "mkdir":
		d.mkdir()
	case "config":
		d.config()
	case "rpc":
		d.rpc()
	}
}

func (d *demo) report(e errkit.Error, ok string) {
	if !e.Failed() {
		_, _ = fmt.Fprintf(d.out, "ok: %s\n", ok)
		return
	}
	_, _ = fmt.Fprintf(d.out, "%+v\n", e)
	logFailure(d.logger, "demo failure", e)
}

func (d *demo) read() {
	path := filepath.Join(d.dir, "missing.txt")
	var data []byte
	read := errno.SyscallN(&d.flag, func() (int, error) {
		b, err := os.ReadFile(path)
		data = b
		return len(b), err
	})
	r := errno.WithErrno(&d.flag, read, "read "+path)
	d.report(r.Err(), fmt.Sprintf("%d bytes", len(data)))
}

func (d *demo) parse() {
	for _, s := range []string{"42", "4x2", "99999999999999999999"} {
		r := errkit.Try(func() (int, error) { return strconv.Atoi(s) }, "parse "+strconv.Quote(s))
		d.report(r.Err(), strconv.Itoa(r.ValueOr(0)))
	}
}

func (d *demo) mkdir() {
	sub := filepath.Join(d.dir, "data")
	_ = os.RemoveAll(sub)
	for range 2 {
		r := errno.InvokeSyscall(&d.flag, errno.Syscall(&d.flag, func() error {
			return os.Mkdir(sub, 0o755)
		}), "mkdir "+sub)
		d.report(r.Err(), "created "+sub)
	}
}

func (d *demo) config() {
	fromEnv := func() errkit.Result[string] {
		if v, ok := os.LookupEnv(ConfigEnv); ok {
			return errkit.Ok(v)
		}
		return errkit.MakeError[string](code.Errno(syscall.ENOENT), "env "+ConfigEnv)
	}
	fromFile := func() errkit.Result[string] {
		path := filepath.Join(d.dir, "errkit.yaml")
		raw := errkit.Try(func() ([]byte, error) { return os.ReadFile(path) }, "file "+path)
		return errkit.Then(raw, func(b []byte) errkit.Result[string] {
			return errkit.Try(func() (string, error) {
				var cfg demoConfig
				if err := yaml.Unmarshal(b, &cfg); err != nil {
					return "", err
				}
				if cfg.Name == "" {
					return "", errkit.New(code.InvalidArgument, "name is empty")
				}
				return cfg.Name, nil
			}, "parse "+path)
		})
	}

	r := errkit.FirstOf(fromEnv(), fromFile())
	d.report(r.Err(), r.ValueOr(""))

	r = errkit.FirstOf(fromEnv(), fromFile(), errkit.Ok("defaults"))
	d.report(r.Err(), r.ValueOr(""))
}

func (d *demo) rpc() {
	intercept := server.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/errkit.Demo/Divide"}
	handler := func(_ context.Context, req any) (any, error) {
		n := req.(int)
		return 100 / n, nil
	}
	for _, n := range []int{4, 0} {
		resp, err := intercept(context.Background(), n, info, handler)
		st := status.Convert(err)
		_, _ = fmt.Fprintf(d.out, "rpc Divide(100, %d): resp=%v code=%s message=%q\n", n, resp, st.Code(), st.Message())
	}
}
