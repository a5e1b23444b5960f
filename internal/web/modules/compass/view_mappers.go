package compass

import (
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/proposals"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

const alignmentSectionID = "compass-alignment"

const summaryLimit = 160

func (h handlers) now() time.Time {
	if h.nowFunc != nil {
		return h.nowFunc()
	}
	return time.Now()
}

func (h handlers) principleCards(items []commons.Poll, loc webtemplates.Localizer) []webtemplates.PollCardView {
	if len(items) == 0 {
		return nil
	}
	cards := make([]webtemplates.PollCardView, 0, len(items))
	for _, item := range items {
		itemID := strings.TrimSpace(item.ID)
		if itemID == "" {
			continue
		}
		cards = append(cards, webtemplates.PollCardView{
			URL:          routepath.AppCompassDetail(itemID),
			Title:        item.Title,
			Summary:      truncate(item.Description),
			TypeLabel:    proposals.DecisionTypeLabel(item.DecisionType, loc),
			TypeClass:    proposals.DecisionTypeClass(item.DecisionType),
			CreatedLabel: webtemplates.RelativeTimeLabel(item.CreatedAt, h.now(), loc),
			Labels:       proposals.LabelChipViews(item.Labels),
		})
	}
	return cards
}

func (h handlers) detailView(principle commons.Poll, alignment templ.Component, loc webtemplates.Localizer) webtemplates.CompassDetailView {
	return webtemplates.CompassDetailView{
		Title:        principle.Title,
		Description:  principle.Description,
		Author:       principle.CreatedBy.Username,
		CreatedLabel: webtemplates.RelativeTimeLabel(principle.CreatedAt, h.now(), loc),
		Labels:       proposals.LabelChipViews(principle.Labels),
		ProposalURL:  routepath.AppProposal(principle.ID),
		Alignment:    alignment,
	}
}

func (h handlers) alignmentSectionView(results commons.PollResults, loc webtemplates.Localizer) webtemplates.ResultsSectionView {
	view := webtemplates.ResultsSectionView{
		SectionID:  alignmentSectionID,
		TotalLabel: webtemplates.T(loc, "web.compass.alignment.total", results.TotalVotes),
	}
	for _, option := range results.Options {
		percent := int(option.Percent + 0.5)
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		view.Rows = append(view.Rows, webtemplates.ResultRowView{
			Text:       option.Text,
			CountLabel: fmt.Sprintf("%d", option.Votes),
			Percent:    percent,
			Mine:       option.OptionID != "" && option.OptionID == results.MyOptionID,
		})
	}
	return view
}

func truncate(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return strings.TrimSpace(string(runes[:summaryLimit])) + "…"
}
