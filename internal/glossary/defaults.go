package glossary

// DefaultEntries returns the built-in phrase set used when no glossary can
// be loaded. Common greetings and courtesy phrases across a handful of
// target languages; enough to serve trivial requests without a model call.
func DefaultEntries() map[string]map[string]string {
	return map[string]map[string]string{
		"hello": {
			"Spanish": "hola",
			"French":  "bonjour",
			"German":  "hallo",
			"Italian": "ciao",
		},
		"goodbye": {
			"Spanish": "adiós",
			"French":  "au revoir",
			"German":  "auf Wiedersehen",
			"Italian": "arrivederci",
		},
		"thank you": {
			"Spanish": "gracias",
			"French":  "merci",
			"German":  "danke",
			"Italian": "grazie",
		},
		"please": {
			"Spanish": "por favor",
			"French":  "s'il vous plaît",
			"German":  "bitte",
			"Italian": "per favore",
		},
		"yes": {
			"Spanish": "sí",
			"French":  "oui",
			"German":  "ja",
			"Italian": "sì",
		},
		"no": {
			"Spanish": "no",
			"French":  "non",
			"German":  "nein",
			"Italian": "no",
		},
		"good morning": {
			"Spanish": "buenos días",
			"French":  "bonjour",
			"German":  "guten Morgen",
			"Italian": "buongiorno",
		},
		"good night": {
			"Spanish": "buenas noches",
			"French":  "bonne nuit",
			"German":  "gute Nacht",
			"Italian": "buonanotte",
		},
		"excuse me": {
			"Spanish": "disculpe",
			"French":  "excusez-moi",
			"German":  "entschuldigung",
			"Italian": "mi scusi",
		},
		"water": {
			"Spanish": "agua",
			"French":  "eau",
			"German":  "Wasser",
			"Italian": "acqua",
		},
		"friend": {
			"Spanish": "amigo",
			"French":  "ami",
			"German":  "Freund",
			"Italian": "amico",
		},
		"welcome": {
			"Spanish": "bienvenido",
			"French":  "bienvenue",
			"German":  "willkommen",
			"Italian": "benvenuto",
		},
	}
}
