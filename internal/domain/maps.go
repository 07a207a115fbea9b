package domain

import "strings"

// MapImageIndex: nombre de mapa normalizado -> URL de imagen. Es de sólo lectura.
type MapImageIndex map[string]string

// DefaultMapImages son los cuatro mapas conocidos.
func DefaultMapImages() MapImageIndex {
	return MapImageIndex{
		"Commons":   "https://media.discordapp.net/attachments/1134593601427476561/1280601517325291592/LoadingScreen_Commons.png",
		"Metro":     "https://media.discordapp.net/attachments/1134593601427476561/1269354484673282109/metro-4k.png",
		"Junction":  "https://media.discordapp.net/attachments/1134593601427476561/1269354324430159912/skyway-4k.png",
		"Greenbelt": "https://media.discordapp.net/attachments/1134593601427476561/1269354223233929287/mill-4k.png",
	}
}

// NormalizeMapName saca un único sufijo "_P" ("Metro_P" -> "Metro").
func NormalizeMapName(name string) string {
	return strings.TrimSuffix(name, "_P")
}

// ImageFor devuelve la URL del mapa o "" si no lo conocemos.
func (m MapImageIndex) ImageFor(mapName string) string {
	if m == nil {
		return ""
	}
	return m[NormalizeMapName(mapName)]
}
