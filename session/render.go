package session

import (
	"fmt"

	"github.com/battlesnakeio/snake2p/display"
	"github.com/battlesnakeio/snake2p/model"
)

// Screen is what Render draws on. display.Driver is one.
type Screen interface {
	DrawCell(p model.Spot, c model.Color)
	DrawText(row int, align display.Align, c model.Color, text string)
}

// Render draws the current screen. It only reads the round.
func (s *Session) Render(scr Screen) {
	switch s.state {
	case StateInRound:
		s.renderBoard(scr)
	case StateRoundOver:
		s.renderGameOver(scr)
	default:
		s.renderMenu(scr)
	}
}

func (s *Session) middle() int {
	return display.HeaderRows + s.cfg.Grid.Height/2
}

func (s *Session) footer() int {
	return display.HeaderRows + s.cfg.Grid.Height
}

func (s *Session) renderMenu(scr Screen) {
	mid := s.middle()
	scr.DrawText(mid-5, display.AlignCenter, model.White, "P2P SNAKE GAME")
	scr.DrawText(mid-2, display.AlignCenter, model.Green, "Press 'H' to HOST a game")
	scr.DrawText(mid-1, display.AlignCenter, model.Blue, "Press 'J' to JOIN a game")
	scr.DrawText(mid, display.AlignCenter, model.Yellow, "Press 'L' for LOCAL multiplayer")

	if s.state == StateConnected {
		scr.DrawText(mid+2, display.AlignCenter, model.White, fmt.Sprintf("Connected as Player %d", int(s.self)))
		if s.role == RoleNetworkJoiner && s.hostEpoch == 0 {
			scr.DrawText(mid+3, display.AlignCenter, model.White, "Waiting for the host to start...")
		} else {
			scr.DrawText(mid+3, display.AlignCenter, model.White, "Press SPACE to start game")
		}
	}
	if s.status != "" {
		scr.DrawText(mid+5, display.AlignCenter, model.White, s.status)
	}
}

// DrawRound draws the live snakes and the active food of a round.
func DrawRound(scr Screen, r *model.Round) {
	for i := range r.Snakes {
		snake := &r.Snakes[i]
		if !snake.Alive {
			continue
		}
		for _, b := range snake.Body {
			scr.DrawCell(b, snake.BodyColor)
		}
		scr.DrawCell(snake.Head, snake.HeadColor)
	}
	for _, f := range r.Foods {
		if f.Active {
			scr.DrawCell(f.Spot, f.Color)
		}
	}
}

func (s *Session) renderBoard(scr Screen) {
	DrawRound(scr, &s.round)

	foot := s.footer()
	if s.role == RoleLocalBoth {
		p1, p2 := s.round.Points()
		scr.DrawText(0, display.AlignLeft, model.Green, fmt.Sprintf("GREEN: %d", p1))
		scr.DrawText(0, display.AlignRight, model.Blue, fmt.Sprintf("BLUE: %d", p2))
		scr.DrawText(foot, display.AlignLeft, model.Green, "P1: WASD!!!!")
		scr.DrawText(foot, display.AlignRight, model.Blue, "P2: ARROWS!!!!")
		return
	}

	scr.DrawText(0, display.AlignLeft, model.White, fmt.Sprintf("YOU: %d", s.round.Snake(s.self).Points))
	scr.DrawText(0, display.AlignRight, model.White, fmt.Sprintf("OPPONENT: %d", s.round.Opponent(s.self).Points))
	scr.DrawText(foot, display.AlignLeft, model.White, "CONTROLS: WASD or ARROWS")
	if s.status != "" {
		scr.DrawText(foot, display.AlignRight, model.Red, s.status)
	}
}

func (s *Session) renderGameOver(scr Screen) {
	mid := s.middle()
	scr.DrawText(mid-2, display.AlignCenter, model.Red, "GAME OVER!!!")
	scr.DrawText(mid, display.AlignCenter, model.Yellow, WinnerText(&s.round, s.role))
	if s.role == RoleNetworkJoiner {
		scr.DrawText(mid+2, display.AlignCenter, model.White, "WAITING FOR THE HOST TO PLAY AGAIN")
	} else {
		scr.DrawText(mid+2, display.AlignCenter, model.White, "PRESS R TO PLAY AGAIN!!!")
	}
	if s.status != "" {
		scr.DrawText(mid+4, display.AlignCenter, model.Red, s.status)
	}
}

// WinnerText is the banner shown when a round ends. Local games name the
// colors, networked games name the players.
func WinnerText(r *model.Round, role Role) string {
	p1, p2 := r.Points()
	points := fmt.Sprintf("Points: P1=%d P2=%d", p1, p2)
	switch r.Winner {
	case model.WinnerPlayer1:
		if role == RoleLocalBoth {
			return "GREEN WINS!!! " + points
		}
		return "PLAYER 1 WINS!!! " + points
	case model.WinnerPlayer2:
		if role == RoleLocalBoth {
			return "BLUE WINS!!! " + points
		}
		return "PLAYER 2 WINS!!! " + points
	}
	return "TIE GAME! " + points
}
