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

package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Logger writes to stderr only; stdout carries the generated header.
var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Out = os.Stderr
	Logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	Logger.Level = logrus.WarnLevel
}

// Configure sets the level and, if dir is not empty, mirrors log lines into
// daily rotated files under dir keeping count of them.
func Configure(level, dir string, count uint) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return errors.Wrapf(err, "log level %q", level)
		}
		Logger.SetLevel(lvl)
	}
	if dir == "" {
		return nil
	}
	return SetFileRotationHooker(dir, count)
}

func SetFileRotationHooker(path string, count uint) error {
	frHook, err := newFileRotateHooker(path, count)
	if err != nil {
		return err
	}
	Logger.Hooks.Add(frHook)
	return nil
}

func newFileRotateHooker(path string, count uint) (logrus.Hook, error) {
	if len(path) == 0 {
		return nil, errors.New("logging: empty log folder")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, errors.Wrapf(err, "logging: create log folder %s", path)
	}
	filePath := filepath.Join(path, "seedgen-%Y%m%d-%H.log")
	linkPath := filepath.Join(path, "seedgen.log")
	writer, err := rotatelogs.New(
		filePath,
		rotatelogs.WithLinkName(linkPath),
		rotatelogs.WithRotationTime(time.Duration(24)*time.Hour),
		rotatelogs.WithRotationCount(count),
	)
	if err != nil {
		return nil, errors.Wrap(err, "logging: create rotate logs")
	}

	hook := lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}, nil)
	return hook, nil
}
