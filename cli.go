package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gosling-engine/engine"
	gm "gosling-engine/goslingmg"
)

func main() {
	cliLoop()
}

func cliLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	board := gm.NewGame()

	fmt.Println("Gosling engine. Commands: show | moves | e2e4 | Nf3 | go depth N | perft N | quit")
	printBoard(board)

	for {
		fmt.Printf("[%s] > ", sideName(board.SideToMove()))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch tokens[0] {
		case "quit":
			return
		case "help":
			fmt.Println("commands: <move> (e2e4, Nf3, exd5), show, moves, go depth N, perft N, quit")
		case "show":
			printBoard(board)
		case "moves":
			for _, m := range board.GenerateMoves() {
				fmt.Printf("%s ", m)
			}
			fmt.Println()
		case "perft":
			if len(tokens) != 2 {
				fmt.Println("usage: perft N")
				continue
			}
			depth, err := strconv.Atoi(tokens[1])
			if err != nil || depth < 0 {
				fmt.Println("bad perft depth")
				continue
			}
			start := time.Now()
			nodes := gm.Perft(board, depth)
			fmt.Printf("perft %d = %d  time %.3fs\n", depth, nodes, time.Since(start).Seconds())
		case "go":
			if len(tokens) != 3 || tokens[1] != "depth" {
				fmt.Println("usage: go depth N")
				continue
			}
			depth, err := strconv.Atoi(tokens[2])
			if err != nil || depth < 1 {
				fmt.Println("bad depth")
				continue
			}
			runSearch(board, depth)
		default:
			playUserMove(board, line)
		}
	}
}

// runSearch searches the current position, then plays and displays the best
// move found.
func runSearch(board *gm.Board, depth int) {
	start := time.Now()
	result := engine.Search(board, depth)
	elapsed := time.Since(start).Seconds()

	if result.BestMove == gm.NoMove {
		fmt.Println("No legal moves available.")
		return
	}
	san := moveToSAN(board, result.BestMove)
	board.MakeMove(result.BestMove)
	fmt.Printf("Engine plays: %s  (eval %.2f) nodes %d time %.3fs\n",
		san, float64(result.Score)/100, result.Nodes, elapsed)
	printBoard(board)
}

// playUserMove resolves a move token against the current position and plays
// it if legal.
func playUserMove(board *gm.Board, token string) {
	m, ok := parseMove(board, token)
	if !ok {
		fmt.Println("Illegal or ambiguous move.")
		return
	}
	board.MakeMove(m)
	printBoard(board)
}

func sideName(c gm.Color) string {
	if c == gm.White {
		return "White"
	}
	return "Black"
}
