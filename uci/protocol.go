// Package uci drives the search core through the Universal Chess
// Interface text protocol: the textual, time-management-owning
// collaborator the search specification deliberately excludes from its
// own scope.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/corvid-engine/corvid/board"
	"github.com/corvid-engine/corvid/search"
)

const (
	engineName    = "Corvid"
	engineAuthor  = "corvid-engine"
	engineVersion = "1.0"
)

// Protocol owns the current position, the transposition table (allocated
// once and reused; each search clears it before starting), and the
// goroutine driving the current search, if any.
type Protocol struct {
	logger *log.Logger

	mu       sync.Mutex
	board    *board.Board
	searcher *search.Searcher
	params   *search.Params
	thinking bool

	ttMegabytes int
}

// New constructs a Protocol at the standard starting position with a
// default-sized transposition table.
func New(logger *log.Logger) *Protocol {
	b, err := board.ParseFEN(board.Startpos)
	if err != nil {
		panic(err)
	}
	p := &Protocol{logger: logger, board: b, ttMegabytes: 16}
	p.searcher = search.NewSearcher(p.board, search.New(p.ttMegabytes))
	return p
}

// Run reads commands from stdin until "quit" and drives the protocol
// loop, grounded on CounterGo's Protocol.Run: a goroutine feeds a
// channel of command lines while the main loop dispatches them.
func (p *Protocol) Run() {
	commands := make(chan string)
	go func() {
		defer close(commands)
		readCommands(commands)
	}()

	for line := range commands {
		if err := p.handle(line); err != nil {
			p.logger.Println(err)
		}
	}
	if p.params != nil {
		p.params.Quit()
	}
}

func readCommands(commands chan<- string) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "quit" {
			return
		}
		if line != "" {
			commands <- line
		}
	}
}

func (p *Protocol) handle(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, rest := fields[0], fields[1:]

	p.mu.Lock()
	thinking := p.thinking
	p.mu.Unlock()
	if thinking {
		switch name {
		case "stop":
			p.params.Stop()
			return nil
		case "isready":
			fmt.Println("readyok")
			return nil
		default:
			return errors.New("search still running")
		}
	}

	switch name {
	case "uci":
		return p.uciCommand()
	case "isready":
		fmt.Println("readyok")
		return nil
	case "ucinewgame":
		return p.newGameCommand()
	case "setoption":
		return p.setOptionCommand(rest)
	case "position":
		return p.positionCommand(rest)
	case "go":
		return p.goCommand(rest)
	case "ponderhit":
		return errors.New("ponder not implemented")
	}
	return fmt.Errorf("unknown command %q", name)
}

func (p *Protocol) uciCommand() error {
	fmt.Printf("id name %s %s\n", engineName, engineVersion)
	fmt.Printf("id author %s\n", engineAuthor)
	fmt.Println("option name Hash type spin default 16 min 1 max 4096")
	fmt.Println("uciok")
	return nil
}

func (p *Protocol) newGameCommand() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searcher.TT.Clear()
	return nil
}

func (p *Protocol) setOptionCommand(fields []string) error {
	nameIdx := indexOf(fields, "name")
	valueIdx := indexOf(fields, "value")
	if nameIdx == -1 || valueIdx == -1 || valueIdx <= nameIdx {
		return errors.New("invalid setoption arguments")
	}
	name := strings.Join(fields[nameIdx+1:valueIdx], " ")
	value := strings.Join(fields[valueIdx+1:], " ")

	if strings.EqualFold(name, "Hash") {
		mb, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		p.ttMegabytes = mb
		p.searcher.TT.Resize(mb)
		return nil
	}
	return fmt.Errorf("unhandled option %q", name)
}

func (p *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("missing position arguments")
	}
	movesIdx := indexOf(fields, "moves")

	var fen string
	switch fields[0] {
	case "startpos":
		fen = board.Startpos
	case "fen":
		if movesIdx == -1 {
			fen = strings.Join(fields[1:], " ")
		} else {
			fen = strings.Join(fields[1:movesIdx], " ")
		}
	default:
		return errors.New("unknown position command")
	}

	b, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	if movesIdx >= 0 {
		for _, movestr := range fields[movesIdx+1:] {
			m, err := board.ParseMove(b, movestr)
			if err != nil {
				return err
			}
			if ok, _ := b.MakeMove(m); !ok {
				return fmt.Errorf("illegal move %q", movestr)
			}
		}
	}

	p.mu.Lock()
	p.board = b
	p.searcher.Board = b
	p.mu.Unlock()
	return nil
}

func (p *Protocol) goCommand(fields []string) error {
	l := parseLimits(fields)

	p.mu.Lock()
	deadline, depth, infinite := allocate(l, p.board.SideToMove() == board.White)
	params := &search.Params{Depth: depth, Deadline: deadline, Infinite: infinite}
	p.params = params
	p.thinking = true
	searcher := p.searcher
	p.mu.Unlock()

	go func() {
		result := searcher.Search(params, func(depth, seldepth int, nodes uint64, elapsed time.Duration, score int, pv []board.Move) {
			fmt.Println(formatInfo(depth, seldepth, nodes, elapsed, score, pv))
		})

		p.mu.Lock()
		p.thinking = false
		p.mu.Unlock()

		if result.BestMove != board.NullMove {
			fmt.Printf("bestmove %s\n", result.BestMove.String())
		} else {
			fmt.Println("bestmove 0000")
		}
	}()
	return nil
}

// formatInfo renders one completed-depth report as
// "info depth <d> seldepth <s> nodes <n> time <ms> score (cp <v>|mate <k>) pv <m1> ...".
// Mate distance is reported symmetrically for both sides per
// (Checkmate - |score| + 1) / 2, signed toward the side delivering mate.
func formatInfo(depth, seldepth int, nodes uint64, elapsed time.Duration, score int, pv []board.Move) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "info depth %d seldepth %d nodes %d time %d", depth, seldepth, nodes, elapsed.Milliseconds())

	if score > search.MateBound || score < -search.MateBound {
		movesToMate := (search.Checkmate - abs(score) + 1) / 2
		if score < 0 {
			movesToMate = -movesToMate
		}
		fmt.Fprintf(sb, " score mate %d", movesToMate)
	} else {
		fmt.Fprintf(sb, " score cp %d", score)
	}

	if len(pv) > 0 {
		sb.WriteString(" pv")
		for _, m := range pv {
			sb.WriteString(" ")
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func indexOf(fields []string, value string) int {
	for i, f := range fields {
		if f == value {
			return i
		}
	}
	return -1
}

func parseLimits(fields []string) limits {
	var l limits
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "wtime":
			i++
			l.whiteTime, _ = strconv.Atoi(valueAt(fields, i))
		case "btime":
			i++
			l.blackTime, _ = strconv.Atoi(valueAt(fields, i))
		case "winc":
			i++
			l.whiteIncrement, _ = strconv.Atoi(valueAt(fields, i))
		case "binc":
			i++
			l.blackIncrement, _ = strconv.Atoi(valueAt(fields, i))
		case "movestogo":
			i++
			l.movesToGo, _ = strconv.Atoi(valueAt(fields, i))
		case "depth":
			i++
			l.depth, _ = strconv.Atoi(valueAt(fields, i))
		case "movetime":
			i++
			l.moveTime, _ = strconv.Atoi(valueAt(fields, i))
		case "infinite":
			l.infinite = true
		}
	}
	return l
}

func valueAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
