// Copyright (c) 2025, the itemd authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/itemworks/itemd/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the item service HTTP server",
		Description: `Start the HTTP server exposing the item collection REST API,
along with health, readiness, info, and Prometheus metrics endpoints.

Server settings (PORT, ADDRESS, rate limits, timeouts) come from environment
variables; the flags below override the store selection.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides PORT)",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind to (overrides ADDRESS)",
			},
			&cli.StringFlag{
				Name: "store",
				Usage: fmt.Sprintf("Item store backend (supported values: %s, %s)",
					api.StoreMemory, api.StoreRedis),
			},
			&cli.StringFlag{
				Name:  "redis-addr",
				Usage: "Redis address when --store=redis (overrides REDIS_ADDR)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// pkg/server reads listener settings from the environment, so
			// the flag overrides are pushed there before config parsing.
			if v := cmd.String("port"); v != "" {
				if err := os.Setenv("PORT", v); err != nil {
					return err
				}
			}
			if v := cmd.String("address"); v != "" {
				if err := os.Setenv("ADDRESS", v); err != nil {
					return err
				}
			}

			cfg, err := api.NewConfig()
			if err != nil {
				return err
			}
			if v := cmd.String("store"); v != "" {
				cfg.Store = v
			}
			if v := cmd.String("redis-addr"); v != "" {
				cfg.RedisAddr = v
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return api.ServeWithConfig(ctx, cfg)
		},
	}
}
