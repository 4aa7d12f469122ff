package entity

import "strings"

type Player struct {
	Mark  Mark   `json:"-"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func NewPlayer(mark Mark, name string) *Player {
	player := &Player{Mark: mark}
	player.SetName(name)

	return player
}

// SetName renames the player; a blank name restores the default "Player <mark>".
func (that *Player) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName(that.Mark)
	}

	that.Name = name
}

func DefaultPlayerName(mark Mark) string {
	return "Player " + mark.String()
}
