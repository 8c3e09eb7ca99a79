package pages

import "github.com/a-h/templ"

// The feature pages are placeholders; their detection logic lives elsewhere.

func GenderDetector() templ.Component {
	return section("gender-detector", "Gender Detector",
		"Deteksi gender dari foto wajah.")
}

func Recognition() templ.Component {
	return section("recognition", "Face Recognition",
		"Pengenalan wajah terhadap data yang terdaftar.")
}

func Geofencing() templ.Component {
	return section("geofencing", "Geo Fencing",
		"Pemantauan lokasi terhadap batas area.")
}
