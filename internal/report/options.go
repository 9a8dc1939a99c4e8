package report

import "time"

// Labels holds every piece of fixed-language text that appears in the
// document. The renderer never hardcodes user-facing strings, so a single
// generation call can carry its own locale; defaults match the Spanish
// registration report the tool was built for.
type Labels struct {
	ReportTitle       string
	GeneralInfo       string
	TotalRegistrants  string
	FirstRegistration string
	LastRegistration  string
	Period            string // takes the day count
	GeneratedOn       string
	Attribution       string
	ChartTitle        string
	ChartXAxis        string
	ChartYAxis        string
	RosterTitle       string // takes the course name
	RosterCount       string // takes the roster size
	ColFullName       string
	ColEmail          string
}

// DefaultLabels returns the Spanish label set.
func DefaultLabels() Labels {
	return Labels{
		ReportTitle:       "REPORTE DE INSCRIPCIONES A CURSOS",
		GeneralInfo:       "INFORMACIÓN GENERAL:",
		TotalRegistrants:  "• Total de personas inscritas: %d",
		FirstRegistration: "• Fecha de inicio de inscripciones: %s",
		LastRegistration:  "• Fecha de fin de inscripciones: %s",
		Period:            "• Período de inscripciones: %d días",
		GeneratedOn:       "Fecha de elaboración: %s",
		Attribution:       "Elaborado por: enrolldeck",
		ChartTitle:        "Inscripciones por Curso",
		ChartXAxis:        "Cursos",
		ChartYAxis:        "Número de Inscritos",
		RosterTitle:       "INSCRITOS EN: %s",
		RosterCount:       "Total de inscritos: %d",
		ColFullName:       "Nombre y Apellidos Completos",
		ColEmail:          "Correo de Contacto",
	}
}

// Options controls document rendering for one generation call.
type Options struct {
	Labels Labels
	// PageSize is an fpdf page size name ("Letter", "A4", "Legal").
	PageSize string
	// DateFormat renders the generation date; DateTimeFormat renders the
	// earliest/latest registration timestamps.
	DateFormat     string
	DateTimeFormat string
	// Now supplies the generation wall clock. Nil means time.Now; tests pin
	// it for reproducible output.
	Now func() time.Time
}

// DefaultOptions returns rendering defaults matching the original report.
func DefaultOptions() Options {
	return Options{
		Labels:         DefaultLabels(),
		PageSize:       "Letter",
		DateFormat:     "02/01/2006",
		DateTimeFormat: "02/01/2006 15:04",
	}
}
