package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/internal/swiss/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := swiss(); err != nil {
		logrus.Fatal(err)
	}
}

func swiss() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
