package impl

import (
	"fmt"
	"strings"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/usecase"
)

// treatmentNotes carries disease-specific guidance matched against a
// lowercase substring of the disease name, first match wins. The backend
// exposes no treatment endpoint, so the plan is assembled locally from the
// verdict.
var treatmentNotes = []struct {
	key   string
	steps []string
}{
	{"blight", []string{
		"Remove and destroy infected leaves; do not compost them.",
		"Apply a copper-based fungicide at the recommended dose.",
		"Avoid overhead irrigation to keep foliage dry.",
	}},
	{"rust", []string{
		"Prune affected areas and clear fallen debris around the plant.",
		"Apply a sulfur-based fungicide early in the season.",
	}},
	{"mildew", []string{
		"Improve air circulation by thinning dense foliage.",
		"Treat with a potassium bicarbonate spray.",
	}},
	{"spot", []string{
		"Remove spotted leaves at first sight and disinfect tools.",
		"Rotate crops next season to break the infection cycle.",
	}},
	{"mosaic", []string{
		"Remove infected plants entirely; mosaic viruses have no cure.",
		"Control aphids, the main transmission vector.",
	}},
}

var bandSummaries = map[entity.SeverityBand]string{
	entity.SeverityLow:    "Early-stage infection. Intervening now gives the best recovery odds.",
	entity.SeverityMedium: "Moderate spread. Treat promptly and monitor neighbouring plants.",
	entity.SeverityHigh:   "Advanced infection. Isolate the plant and treat aggressively.",
}

// Treatment builds the local guidance plan for a verdict.
func (srv *diagnosisService) Treatment(diseaseName string, severity float64) *usecase.TreatmentPlan {
	band := entity.BandOf(severity)

	plan := &usecase.TreatmentPlan{
		DiseaseName: diseaseName,
		Band:        band,
		Summary:     bandSummaries[band],
	}

	needle := strings.ToLower(diseaseName)
	for _, note := range treatmentNotes {
		if strings.Contains(needle, note.key) {
			plan.Steps = append(plan.Steps, note.steps...)

			break
		}
	}

	if len(plan.Steps) == 0 {
		plan.Steps = []string{
			fmt.Sprintf("Consult a local agronomist about %s before applying chemicals.", diseaseName),
			"Remove visibly affected foliage and keep the plant isolated.",
		}
	}

	if band == entity.SeverityHigh {
		plan.Steps = append(plan.Steps,
			"Log this diagnosis so nearby growers see the outbreak on the map.")
	}

	return plan
}
