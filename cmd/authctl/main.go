package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/cli"
)

func main() {

	addr := flag.String("a", "http://localhost:5000", "server base URL")
	flag.Parse()

	app := cli.NewApp(client.New(*addr), os.Stdin, os.Stdout)

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
