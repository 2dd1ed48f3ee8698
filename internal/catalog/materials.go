package catalog

import (
	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
)

// Coefficient sources follow the original literature fits, all
// parameterized in micrometers. Per-axis entries of birefringent crystals
// are separate scalar materials; the tensor itself is out of scope.

// Malitson, JOSA 55, 1205 (1965).
func newSiO2() optics.DispersionModel {
	return models.NewSellmeier(
		models.Term{B: 0.6961663, C: 0.0684043 * 0.0684043},
		models.Term{B: 0.4079426, C: 0.1162414 * 0.1162414},
		models.Term{B: 0.8974794, C: 9.896161 * 9.896161},
	)
}

func newAl2O3o() optics.DispersionModel {
	return models.NewSellmeier(
		models.Term{B: 1.4313493, C: 0.0726631 * 0.0726631},
		models.Term{B: 0.65054713, C: 0.1193242 * 0.1193242},
		models.Term{B: 5.3414021, C: 18.028251 * 18.028251},
	)
}

func newAl2O3e() optics.DispersionModel {
	return models.NewSellmeier(
		models.Term{B: 1.5039759, C: 0.0740288 * 0.0740288},
		models.Term{B: 0.55069141, C: 0.1216529 * 0.1216529},
		models.Term{B: 6.5927379, C: 20.072248 * 20.072248},
	)
}

// DeVore, JOSA 41, 416 (1951).
func newTiO2o() optics.DispersionModel {
	return models.NewLaurent(5.913, 0, models.Term{B: 0.2441, C: 0.0803})
}

func newTiO2e() optics.DispersionModel {
	return models.NewLaurent(7.197, 0, models.Term{B: 0.3322, C: 0.0843})
}

// Kato & Takaoka, Appl. Opt. 41, 5040 (2002).
func newKtp(axis byte) *models.Laurent {
	switch axis {
	case 'x':
		return models.NewLaurent(3.29100, 0,
			models.Term{B: 0.04140, C: 0.03978},
			models.Term{B: 9.35522, C: 31.45571})
	case 'y':
		return models.NewLaurent(3.45018, 0,
			models.Term{B: 0.04341, C: 0.04597},
			models.Term{B: 16.98825, C: 39.43799})
	default: // z
		return models.NewLaurent(4.59423, 0,
			models.Term{B: 0.06206, C: 0.04763},
			models.Term{B: 110.80672, C: 86.12171})
	}
}

// lnRoomTemp is the thermal factor F = (T−24.5)(T+570.5) of the congruent
// LiNbO3 fit, fixed at T = 20 °C. Temperature dependence stays out of the
// catalog surface.
const lnRoomTemp = (20.0 - 24.5) * (20.0 + 570.5)

// lnCoefficients converts the nm-parameterized congruent LiNbO3 fit
// (Gooch & Housego data sheet) to micrometer units at room temperature.
func lnCoefficients(axis byte) (offset float64, term models.Term, d float64) {
	var a [4]float64
	var b [3]float64
	if axis == 'e' {
		a = [4]float64{4.582, 9.921e4, 2.109e2, 2.194e-8}
		b = [3]float64{5.2716e-2, -4.9143e-5, 2.2971e-7}
	} else {
		a = [4]float64{4.9048, 1.1775e5, 2.1802e2, 2.7153e-8}
		b = [3]float64{2.2314e-2, -2.9671e-5, 2.1429e-8}
	}
	offset = a[0] + b[2]*lnRoomTemp
	term = models.Term{
		B: (a[1] + b[0]*lnRoomTemp) * 1e-6,                                   // nm² -> um²
		C: ((a[2] + b[1]*lnRoomTemp) * 1e-3) * ((a[2] + b[1]*lnRoomTemp) * 1e-3), // nm -> um, squared
	}
	d = a[3] * 1e6 // nm⁻² -> um⁻²
	return offset, term, d
}

func newLn(axis byte) *models.Laurent {
	offset, term, d := lnCoefficients(axis)
	return models.NewLaurent(offset, d, term)
}

// newTfln shifts the bulk LiNbO3 permittivity by a constant so that
// n(1550 nm) matches measured thin-film values.
func newTfln(axis byte) *models.Laurent {
	offset, term, d := lnCoefficients(axis)
	bulk := models.NewLaurent(offset, d, term)
	bulkEps, _ := bulk.Permittivity(optics.Wavelength(1.55e-6))

	n1550 := 2.20600 // ordinary
	if axis == 'e' {
		n1550 = 2.14455
	}
	return models.NewLaurent(offset+n1550*n1550-bulkEps, d, term)
}

// Zelmon et al., JOSA B 14, 3319 (1997) style x²-weighted Sellmeier fit
// for 5% MgO-doped LiNbO3.
func newLnMg(axis byte) *models.Sellmeier {
	if axis == 'e' {
		return models.NewSellmeier(
			models.Term{B: 2.2454, C: 0.01242},
			models.Term{B: 1.3005, C: 0.05313},
			models.Term{B: 6.8972, C: 331.33},
		)
	}
	return models.NewSellmeier(
		models.Term{B: 2.4272, C: 0.01478},
		models.Term{B: 1.4617, C: 0.05612},
		models.Term{B: 9.6536, C: 371.216},
	)
}

func newBbo(axis byte) *models.Laurent {
	if axis == 'e' {
		return models.NewLaurent(2.3730, 0.0044, models.Term{B: 0.0128, C: 0.0156})
	}
	return models.NewLaurent(2.7405, 0.0155, models.Term{B: 0.0184, C: 0.0179})
}

func newBibo(axis byte) *models.Laurent {
	switch axis {
	case 'x':
		return models.NewLaurent(3.0722, 0.0133, models.Term{B: 0.0324, C: 0.0315})
	case 'y':
		return models.NewLaurent(3.1669, 0.0175, models.Term{B: 0.0372, C: 0.0348})
	default: // z
		return models.NewLaurent(3.6525, 0.0226, models.Term{B: 0.0511, C: 0.0370})
	}
}
