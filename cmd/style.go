package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/poker-odds/domain/poker"
	"github.com/luca-patrignani/poker-odds/domain/strength"
	"github.com/luca-patrignani/poker-odds/simulation"
)

func prettyCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Pretty()
	}
	return strings.Join(s, " ")
}

func percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", 100*rate)
}

func renderTitle() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("O", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("dds", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

func renderBoard(in input) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4)
	content := pterm.Sprintfln("Board: %s", prettyCards(in.board))
	if len(in.dead) > 0 {
		content += pterm.Sprintfln("Dead: %s", prettyCards(in.dead))
	}
	return pbox.WithTitle(pterm.LightYellow(in.game.String())).WithTitleTopCenter().Sprint(strings.TrimSuffix(content, "\n"))
}

func renderPlayers(res simulation.Result, descriptions []string) (string, error) {
	header := []string{"Player", "Hand", "Win", "Tie"}
	if descriptions != nil {
		header = append(header, "Description")
	}
	data := pterm.TableData{header}
	for i, p := range res.Players {
		row := []string{
			pterm.LightCyan(fmt.Sprintf("Player %d", i+1)),
			prettyCards(p.Hand),
			percent(res.WinRate(i)),
			percent(res.TieRate(i)),
		}
		if descriptions != nil {
			row = append(row, descriptions[i])
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

// renderCombinations lists, for every category at least one player made,
// how often each player made it, strongest category first.
func renderCombinations(rules strength.Rules, res simulation.Result) (string, error) {
	header := []string{"Hand"}
	for i := range res.Players {
		header = append(header, fmt.Sprintf("Player %d", i+1))
	}
	data := pterm.TableData{header}
	for _, c := range rules.Order() {
		made := false
		row := []string{c.String()}
		for i, p := range res.Players {
			made = made || p.Combinations[c] > 0
			row = append(row, percent(res.CombinationRate(i, c)))
		}
		if made {
			data = append(data, row)
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func renderSummary(res simulation.Result) string {
	kind := pterm.LightGreen("exhaustive")
	if res.Approximate {
		kind = pterm.LightYellow("approximate")
	}
	return pterm.Sprintfln("%d boards, %s, %v", res.Iterations, kind, res.Elapsed)
}

func renderText(w io.Writer, in input, rules strength.Rules, res simulation.Result, descriptions []string) error {
	title, err := renderTitle()
	if err != nil {
		return err
	}
	players, err := renderPlayers(res, descriptions)
	if err != nil {
		return err
	}
	combinations, err := renderCombinations(rules, res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, title, renderBoard(in), "\n\n", players, "\n", combinations, "\n", renderSummary(res))
	return err
}

// resultView is the JSON form of a result.
type resultView struct {
	Game        string       `json:"game"`
	Board       []poker.Card `json:"board"`
	Dead        []poker.Card `json:"dead"`
	Iterations  uint64       `json:"iterations"`
	Approximate bool         `json:"approximate"`
	ElapsedMs   int64        `json:"elapsed_ms"`
	Players     []playerView `json:"players"`
}

type playerView struct {
	Hand         []poker.Card                    `json:"hand"`
	Wins         uint64                          `json:"wins"`
	Ties         uint64                          `json:"ties"`
	WinRate      float64                         `json:"win_rate"`
	TieRate      float64                         `json:"tie_rate"`
	Combinations map[strength.Combination]uint64 `json:"combinations"`
	Description  string                          `json:"description,omitempty"`
}

func newResultView(in input, res simulation.Result, descriptions []string) resultView {
	v := resultView{
		Game:        in.game.String(),
		Board:       in.board,
		Dead:        in.dead,
		Iterations:  res.Iterations,
		Approximate: res.Approximate,
		ElapsedMs:   res.Elapsed.Milliseconds(),
		Players:     make([]playerView, len(res.Players)),
	}
	for i, p := range res.Players {
		v.Players[i] = playerView{
			Hand:         p.Hand,
			Wins:         p.Wins,
			Ties:         p.Ties,
			WinRate:      res.WinRate(i),
			TieRate:      res.TieRate(i),
			Combinations: p.Combinations,
		}
		if descriptions != nil {
			v.Players[i].Description = descriptions[i]
		}
	}
	return v
}
