/*
 *  Copyright (C) 2017 gyee authors
 *
 *  This file is part of the gyee library.
 *
 *  The gyee library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The gyee library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

/*
seedgen prints a C header of filtered random words used to seed the
random driver's pools at build time. The makefile redirects stdout into
the header and removes it once the driver is compiled, so every build gets
fresh data.

The data comes from the OS entropy source and is only as secret as the
build environment. It is one layer of defence, never a substitute for
seeding the pools at boot.
*/

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/yeeco/seedgen/config"
	"github.com/yeeco/seedgen/crypto/random"
	"github.com/yeeco/seedgen/header"
	"github.com/yeeco/seedgen/utils/logging"
)

var ErrUsage = errors.New("usage: seedgen takes no arguments")

var (
	app = newApp(os.Stdout)
)

func newApp(out io.Writer) *cli.App {
	a := cli.NewApp()
	a.Name = filepath.Base(os.Args[0])
	a.Usage = "generate random seed constants for the random driver"
	a.HideHelp = true
	a.HideVersion = true
	a.Copyright = "Copyright 2017-2019 The gyee Authors"
	a.Writer = os.Stderr
	a.ErrWriter = os.Stderr
	a.OnUsageError = func(ctx *cli.Context, err error, isSubcommand bool) error {
		return errors.Wrap(ErrUsage, err.Error())
	}
	a.Action = func(ctx *cli.Context) error {
		return seedgen(ctx, out)
	}
	return a
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logging.Logger.Fatal(err)
	}
}

//seedgen is the main entry point
func seedgen(ctx *cli.Context, out io.Writer) error {
	if ctx.NArg() > 0 {
		return errors.Wrapf(ErrUsage, "unexpected argument %q", ctx.Args().First())
	}

	cfg, err := config.GetDefaultConfig()
	if err != nil {
		return err
	}
	if err := logging.Configure(cfg.App.LogLevel, cfg.App.LogDir, cfg.App.LogCount); err != nil {
		return err
	}
	log := logging.Logger.WithField("run", uuid.NewV4().String())

	src, err := random.OpenSource(cfg.Entropy.Source, cfg.Entropy.Device)
	if err != nil {
		return err
	}
	defer src.Close()

	gen := random.NewGenerator(src)
	data, err := header.Build(cfg, gen, header.Options{GCM: header.GCMBuild})
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return errors.Wrap(err, "write header")
	}

	log.WithFields(logrus.Fields{
		"source":  cfg.Entropy.Source,
		"gcm":     header.GCMBuild,
		"redraws": gen.Redraws(),
	}).Info("header generated")
	return nil
}
