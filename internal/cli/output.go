package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionState:
		o.printSessionState(v)
	case DrawResult:
		o.printDrawResult(v)
	case Card:
		o.printCard(v, "")
	case CardDefinitionList:
		o.printCardDefinitions(v)
	case StickerDefinitionList:
		o.printStickerDefinitions(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Sticker response type (matches API)
type Sticker struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Power        int    `json:"power"`
	Construction int    `json:"construction"`
	Invention    int    `json:"invention"`
}

// Slot response type
type Slot struct {
	Index       int      `json:"index"`
	Occupant    *Sticker `json:"occupant,omitempty"`
	Replaceable bool     `json:"replaceable"`
}

// Card response type
type Card struct {
	ID           string `json:"id"`
	InstanceID   string `json:"instance_id"`
	Name         string `json:"name"`
	Race         string `json:"race"`
	Slots        []Slot `json:"slots"`
	Power        int    `json:"power"`
	Construction int    `json:"construction"`
	Invention    int    `json:"invention"`
}

// ResourceTotals response type
type ResourceTotals struct {
	Power        int `json:"power"`
	Construction int `json:"construction"`
	Invention    int `json:"invention"`
}

// EventRecord response type
type EventRecord struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail"`
}

// SessionState response type
type SessionState struct {
	ID              string         `json:"id"`
	Hand            []Card         `json:"hand"`
	HandLimit       int            `json:"hand_limit"`
	DrawPileSize    int            `json:"draw_pile_size"`
	DiscardPileSize int            `json:"discard_pile_size"`
	Resources       ResourceTotals `json:"resources"`
	Events          []EventRecord  `json:"events"`
}

// DrawResult response type
type DrawResult struct {
	Drawn    int `json:"drawn"`
	HandSize int `json:"hand_size"`
}

// CardDefinition response type
type CardDefinition struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Race             string   `json:"race"`
	StartingStickers []string `json:"starting_stickers"`
	MaxSlotCount     int      `json:"max_slot_count"`
}

// CardDefinitionList wraps a card definition listing for text output
type CardDefinitionList []CardDefinition

// StickerDefinition response type
type StickerDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// StickerDefinitionList wraps a sticker definition listing for text output
type StickerDefinitionList []StickerDefinition

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSessionState(s SessionState) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Hand:    %d/%d cards\n", len(s.Hand), s.HandLimit)
	fmt.Printf("Piles:   draw %d, discard %d\n", s.DrawPileSize, s.DiscardPileSize)
	fmt.Printf("Played:  power %d, construction %d, invention %d\n",
		s.Resources.Power, s.Resources.Construction, s.Resources.Invention)
	for i, card := range s.Hand {
		fmt.Printf("\n[%d] ", i)
		o.printCard(card, "    ")
	}
	if len(s.Events) > 0 {
		fmt.Println("\nRecent events:")
		for _, e := range s.Events {
			fmt.Printf("  %s  %s  %s\n", e.Timestamp.Format(time.TimeOnly), e.Type, e.Detail)
		}
	}
}

func (o *Output) printDrawResult(r DrawResult) {
	fmt.Printf("Drew %d card(s), hand size %d\n", r.Drawn, r.HandSize)
}

func (o *Output) printCard(c Card, indent string) {
	fmt.Printf("%s (%s) [%s]\n", c.Name, c.Race, c.InstanceID)
	fmt.Printf("%spower %d, construction %d, invention %d\n", indent, c.Power, c.Construction, c.Invention)
	for _, slot := range c.Slots {
		if slot.Occupant != nil {
			fmt.Printf("%sslot %d: %s (%s)\n", indent, slot.Index, slot.Occupant.Name, slot.Occupant.Category)
		} else {
			fmt.Printf("%sslot %d: empty\n", indent, slot.Index)
		}
	}
}

func (o *Output) printCardDefinitions(defs CardDefinitionList) {
	for _, def := range defs {
		fmt.Printf("%-20s %-12s %-8s slots=%d starting=[%s]\n",
			def.ID, def.Name, def.Race, def.MaxSlotCount, strings.Join(def.StartingStickers, ", "))
	}
}

func (o *Output) printStickerDefinitions(defs StickerDefinitionList) {
	for _, def := range defs {
		fmt.Printf("%-20s %-12s %-12s %s\n", def.ID, def.Name, def.Type, def.Description)
	}
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Status: %s\n", r.Status)
}
