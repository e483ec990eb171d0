package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/qnkhuat/fourterm/pkg"
	"github.com/qnkhuat/fourterm/pkg/gui"
	"github.com/qnkhuat/fourterm/pkg/text"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	themeName := flag.String("theme", gui.ThemeBasic.Name, "color theme")
	themesPath := flag.String("themes", "", "json file with extra themes")
	plain := flag.Bool("plain", false, "line based input and output instead of the full screen ui")
	redName := flag.String("red", "Red", "name of the player moving first")
	yellowName := flag.String("yellow", "Yellow", "name of the second player")
	session := flag.String("session", "", "session name shown in the footer")
	flag.Parse()
	pkg.InitLog(*logPath, "CLIENT: ")

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if *plain || !tty {
		log.Println("Starting text game")
		rt := text.New(os.Stdin, os.Stdout, text.Options{
			RedName:    *redName,
			YellowName: *yellowName,
			Color:      tty,
			Prompt:     text.StdinIsTerminal(),
		})
		if err := rt.Run(); err != nil {
			log.Fatalf("text game failed: %v", err)
		}
		return
	}

	var themes []gui.ThemeHex
	if *themesPath != "" {
		var err error
		if themes, err = gui.LoadThemes(*themesPath); err != nil {
			log.Fatalf("failed to load themes: %v", err)
		}
	}
	theme, err := gui.ImportThemes(*themeName, themes)
	if err != nil {
		log.Printf("Theme %q: %v, using %s", *themeName, err, gui.ThemeBasic.Name)
		theme = gui.ThemeBasic
	}

	log.Printf("New Client %s", *session)
	cl := gui.NewClient(gui.Options{
		Theme:   theme,
		Names:   gui.Names{Red: *redName, Yellow: *yellowName},
		Session: *session,
	})

	// Down when receive killed signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		cl.App.Stop()
	}()

	if err := cl.Run(); err != nil {
		log.Fatalf("failed to run application: %v", err)
	}
	log.Println("Client exited")
}
