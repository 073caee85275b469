// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"go.jetpack.io/trackpad/trackcli"
	"go.jetpack.io/trackpad/trackcli/provider"
)

func main() {
	opts := []trackcli.Option{}
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		logger, err := provider.NewSentryLogger(dsn)
		if err != nil {
			logrus.WithError(err).Warn("error reporting disabled")
		} else {
			opts = append(opts, trackcli.WithErrorLogger(logger))
		}
	}
	trackcli.New(opts...).Run(context.Background())
}
