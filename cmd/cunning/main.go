package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"comboplay/internal/config"
	"comboplay/internal/rng"
	"comboplay/pkg/agent"
	"comboplay/pkg/card"
	"comboplay/pkg/deck"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the agent version
var Version = "v0.0.0-dev"

var (
	handFlag = flag.String("hand", "", "the hand to play, i.e., +1:1,*3:2 (deals a hand when empty)")
	energy   = flag.Int("energy", 5, "the energy available this turn")
	locked   = flag.Float64("locked", 0, "the locked total")
	current  = flag.Float64("current", 0, "the current total")
	seed     = flag.Int64("seed", 0, "the seed used to pick and shuffle a deck (0 is random)")
	all      = flag.Bool("all", false, "print every candidate play, best first")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	a := agent.New(logrus.StandardLogger(), agentOptions(cfg))

	hand, err := getHand(a, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not get a hand")
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"hand":    hand.String(),
	}).Info("deciding")

	if *all {
		for _, play := range a.Candidates(hand, *energy, *locked, *current) {
			fmt.Println(play)
		}

		return
	}

	play := a.PlayTurn(hand, *energy, *locked, *current)
	if len(play) == 0 {
		fmt.Println("pass")
		return
	}

	fmt.Println(play)
}

func agentOptions(cfg config.Config) agent.Options {
	opts := agent.DefaultOptions()
	opts.DivisiveThreshold = cfg.Agent.DivisiveThreshold
	opts.MaxHandSize = cfg.Agent.MaxHandSize
	opts.Deck = cfg.Agent.Deck
	opts.DeckOptions = cfg.Agent.DeckOptions
	if *seed != 0 {
		opts.RNG = rng.Seeded(*seed)
	}

	return opts
}

func getHand(a *agent.Agent, cfg config.Config) (card.Hand, error) {
	if *handFlag != "" {
		return card.CardsFromString(*handFlag)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		str, err := getInput("Hand (blank to deal)")
		if err != nil {
			return nil, err
		}

		if str != "" {
			return card.CardsFromString(str)
		}
	}

	return deal(a, cfg)
}

func deal(a *agent.Agent, cfg config.Config) (card.Hand, error) {
	d, err := deck.New(a.SelectDeck(), cfg.Catalog)
	if err != nil {
		return nil, err
	}

	s := *seed
	if s < 0 {
		return nil, errors.New("seed must be >= 0")
	}

	if s == 0 {
		s = time.Now().UnixNano()
	}
	d.Shuffle(s)

	handSize := cfg.Agent.HandSize
	if !d.CanDraw(handSize) {
		handSize = d.CardsLeft()
	}

	return d.DrawHand(handSize)
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	format := config.Instance().Log.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
