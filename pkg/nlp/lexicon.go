package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// wordNumbers maps spelled-out Portuguese hours (normalized, diacritics
// stripped) to their numeric value. Multi-word entries must stay here so the
// alternation below can prefer them over their prefixes.
var wordNumbers = map[string]int{
	"uma":           1,
	"duas":          2,
	"dois":          2,
	"tres":          3,
	"quatro":        4,
	"cinco":         5,
	"seis":          6,
	"sete":          7,
	"oito":          8,
	"nove":          9,
	"dez":           10,
	"onze":          11,
	"doze":          12,
	"treze":         13,
	"quatorze":      14,
	"catorze":       14,
	"quinze":        15,
	"dezesseis":     16,
	"dezessete":     17,
	"dezoito":       18,
	"dezenove":      19,
	"vinte":         20,
	"vinte e uma":   21,
	"vinte e duas":  22,
	"vinte e dois":  22,
	"vinte e tres":  23,
}

// wordNumberPattern is a longest-first alternation so "vinte e tres" wins over
// "vinte" and "tres".
var wordNumberPattern = func() string {
	keys := make([]string, 0, len(wordNumbers))
	for k := range wordNumbers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return strings.Join(keys, "|")
}()

var weekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayPatterns = []struct {
	day Weekday
	re  *regexp.Regexp
}{
	{Monday, regexp.MustCompile(`\bsegundas?(-feiras?)?\b`)},
	{Tuesday, regexp.MustCompile(`\btercas?(-feiras?)?\b`)},
	{Wednesday, regexp.MustCompile(`\bquartas?(-feiras?)?\b`)},
	{Thursday, regexp.MustCompile(`\bquintas?(-feiras?)?\b`)},
	{Friday, regexp.MustCompile(`\bsextas?(-feiras?)?\b`)},
	{Saturday, regexp.MustCompile(`\bsabados?\b`)},
	{Sunday, regexp.MustCompile(`\bdomingos?\b`)},
}

var weekdayDisplay = map[Weekday]string{
	Monday:    "segunda",
	Tuesday:   "terça",
	Wednesday: "quarta",
	Thursday:  "quinta",
	Friday:    "sexta",
	Saturday:  "sábado",
	Sunday:    "domingo",
}

// categoryBags is evaluated in order, first matching bag wins.
var categoryBags = []struct {
	category Category
	words    []string
}{
	{CategoryWork, []string{"trabalho", "reuniao", "cliente", "escritorio", "call", "meeting", "entrevista"}},
	{CategoryStudy, []string{"estudo", "estudar", "aula", "prova", "faculdade", "curso"}},
	{CategoryHealth, []string{"academia", "treino", "medico", "consulta", "dentista", "remedio"}},
}

var queryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bo que (eu )?tenho\b`),
	regexp.MustCompile(`\bminha agenda\b`),
	regexp.MustCompile(`\bminhas rotinas\b`),
	regexp.MustCompile(`\bmeus (compromissos|lembretes|eventos)\b`),
	regexp.MustCompile(`\bmostr(a|e|ar)\b`),
	regexp.MustCompile(`\bquais (sao|os|as)\b`),
	regexp.MustCompile(`\blistar?\b`),
	regexp.MustCompile(`\bver (minha |minhas )?(agenda|rotinas?|compromissos)\b`),
	regexp.MustCompile(`\bagenda d[eo] (hoje|amanha)\b`),
}

var (
	reCreationKeyword = regexp.MustCompile(`\b(lembr\w*|agendar?|marcar?|adicionar?|criar?|anotar?|rotina|evento|reuniao|compromisso|call|meeting)\b`)
	reRecurringDay    = regexp.MustCompile(`\btod[ao]s? (as |os )?(segunda|terca|quarta|quinta|sexta|sabado|domingo)`)
	reMonToFri        = regexp.MustCompile(`\bsegunda(-feira)? a sexta(-feira)?\b`)
	reEveryDay        = regexp.MustCompile(`\btodos os dias\b|\btodo (o )?dia\b`)
	reDateWord        = regexp.MustCompile(`\bhoje\b|\bamanha\b|\bdia \d{1,2}\b`)
)
