package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/salar-zonal-stats/internal/domain"
)

// BuildPrompt формирует промпт для интерпретации результата
func BuildPrompt(result *domain.ZonalResult) string {
	var b strings.Builder

	b.WriteString("Act as an expert in salt flats.\n")
	fmt.Fprintf(&b, "Analyze the zonal statistics of the %s index in %s.\n", result.IndexUsed, result.AreaName)
	b.WriteString("Zones and values (median):\n")
	for _, s := range result.Stats {
		fmt.Fprintf(&b, "- %s: %.3f (%d ha)\n", s.ClassName, s.Median, s.AreaHa)
	}
	fmt.Fprintf(&b, "Area-weighted median: %.3f\n", result.WeightedMedian())
	b.WriteString("Summarize what this means for the water health of the salar in 100 words.")

	return b.String()
}

// promptHash - ключ кеша интерпретаций
func promptHash(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
