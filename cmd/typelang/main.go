package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/typelang"
	"github.com/reusee/typelang/cmds"
	"github.com/reusee/typelang/debugs"
	"github.com/reusee/typelang/logs"
	"github.com/reusee/typelang/modes"
	"github.com/reusee/typelang/registries"
	"github.com/reusee/typelang/syncs"
	"github.com/reusee/typelang/vars"
)

var (
	exprArgs = cmds.Collect[string]("-e")
	fileArgs = cmds.Collect[string]("-f")
	tapFlag  = cmds.Switch("-tap")
	jobsFlag = cmds.Var[int]("-jobs")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		registry registries.Registry,
		newSpan logs.NewSpan,
		tap debugs.Tap,
	) {
		ok := true
		parsed := make(map[string]*typelang.Type)

		for _, expr := range *exprArgs {
			typ, err := typelang.Parse("arg", expr, registry)
			if err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				ok = false
				continue
			}
			fmt.Println(typ)
			parsed[expr] = typ
		}

		if len(*fileArgs) > 0 {
			if !checkFiles(ctx, *fileArgs, registry, logger, newSpan) {
				ok = false
			}
		}

		if len(*exprArgs) == 0 && len(*fileArgs) == 0 {
			if !checkLines(os.Stdin, "stdin", registry, func(typ *typelang.Type) {
				fmt.Println(typ)
			}) {
				ok = false
			}
		}

		if *tapFlag {
			tap(ctx, "parsed types", map[string]any{
				"parsed": parsed,
				"names":  registry.Names(),
			})
		}

		if !ok {
			os.Exit(1)
		}
	})

}

// checkFiles parses every annotation file concurrently, bounded by -jobs.
func checkFiles(
	ctx context.Context,
	paths []string,
	registry registries.Registry,
	logger logs.Logger,
	newSpan logs.NewSpan,
) bool {
	sem := syncs.NewSemaphore(vars.FirstNonZero(
		*jobsFlag,
		runtime.GOMAXPROCS(0),
	))

	ok := true
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		sem.Acquire()
		go func() {
			defer wg.Done()
			defer sem.Release()

			ctx, _ := newSpan(ctx, "")
			logger.InfoContext(ctx, "checking", "path", path)

			fileOK := checkFile(ctx, path, registry, logger)

			mu.Lock()
			if !fileOK {
				ok = false
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	return ok
}

func checkFile(
	ctx context.Context,
	path string,
	registry registries.Registry,
	logger logs.Logger,
) bool {
	f, err := os.Open(path)
	if err != nil {
		logger.ErrorContext(ctx, "open", "error", logs.WrapSpan(ctx, err))
		return false
	}
	defer f.Close()

	return checkLines(f, path, registry, nil)
}

// checkLines parses one type expression per line, skipping blank lines and
// '#' comments. Every line is checked even after a failure.
func checkLines(
	f io.Reader,
	name string,
	registry registries.Registry,
	onType func(*typelang.Type),
) bool {
	ok := true
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isSkippable(line) {
			continue
		}

		typ, err := typelang.Parse(
			fmt.Sprintf("%s:%d", name, lineNo),
			line,
			registry,
		)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			ok = false
			continue
		}
		if onType != nil {
			onType(typ)
		}
	}
	ce(scanner.Err())

	return ok
}

func isSkippable(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t', '\r':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return true
}
