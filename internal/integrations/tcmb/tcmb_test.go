package tcmb

import "testing"

const sampleBulletin = `<?xml version="1.0" encoding="UTF-8"?>
<Tarih_Date Tarih="28.08.2026" Date="08/28/2026" Bulten_No="2026/163">
	<Currency CrossOrder="0" Kod="USD" CurrencyCode="USD">
		<Unit>1</Unit>
		<Isim>ABD DOLARI</Isim>
		<CurrencyName>US DOLLAR</CurrencyName>
		<ForexBuying>32.7500</ForexBuying>
		<ForexSelling>32.8500</ForexSelling>
	</Currency>
	<Currency CrossOrder="9" Kod="EUR" CurrencyCode="EUR">
		<Unit>1</Unit>
		<Isim>EURO</Isim>
		<CurrencyName>EURO</CurrencyName>
		<ForexBuying>35.3000</ForexBuying>
		<ForexSelling>35.4000</ForexSelling>
	</Currency>
	<Currency CrossOrder="4" Kod="GBP" CurrencyCode="GBP">
		<Unit>1</Unit>
		<Isim>İNGİLİZ STERLİNİ</Isim>
		<CurrencyName>POUND STERLING</CurrencyName>
		<ForexBuying>41.4000</ForexBuying>
		<ForexSelling>41.5000</ForexSelling>
	</Currency>
	<Currency CrossOrder="6" Kod="JPY" CurrencyCode="JPY">
		<Unit>100</Unit>
		<Isim>JAPON YENİ</Isim>
		<CurrencyName>JAPENESE YEN</CurrencyName>
		<ForexBuying>21.5000</ForexBuying>
		<ForexSelling>21.7000</ForexSelling>
	</Currency>
</Tarih_Date>`

func TestParseBulletin(t *testing.T) {
	rates, err := parseBulletin([]byte(sampleBulletin))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rates["USD"] != 32.85 {
		t.Errorf("USD = %v, want 32.85", rates["USD"])
	}
	if rates["EUR"] != 35.40 {
		t.Errorf("EUR = %v, want 35.40", rates["EUR"])
	}
	if rates["GBP"] != 41.50 {
		t.Errorf("GBP = %v, want 41.50", rates["GBP"])
	}
	if _, ok := rates["JPY"]; ok {
		t.Error("untracked currency should be skipped")
	}
}

func TestParseBulletin_Invalid(t *testing.T) {
	if _, err := parseBulletin([]byte("<Tarih_Date></Tarih_Date>")); err == nil {
		t.Error("expected error for bulletin without currencies")
	}
	if _, err := parseBulletin([]byte("not xml at all <<<")); err == nil {
		t.Error("expected error for malformed XML")
	}
}
