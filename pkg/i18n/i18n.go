package i18n

import "strings"

// DefaultLanguage é o idioma padrão da interface
const DefaultLanguage = "ar"

// translations são as mensagens da API nos dois idiomas da interface
var translations = map[string]map[string]string{
	"ar": {
		"invalid_data":           "بيانات غير صالحة",
		"product_not_found":      "المنتج غير موجود",
		"customer_not_found":     "العميل غير موجود",
		"supplier_not_found":     "المورد غير موجود",
		"sale_not_found":         "عملية البيع غير موجودة",
		"empty_cart":             "السلة فارغة",
		"sale_already_completed": "تم إتمام البيع بالفعل، ابدأ عملية بيع جديدة",
		"invalid_payment_method": "طريقة دفع غير صالحة",
		"sale_successful":        "تمت عملية البيع بنجاح",
		"cart_cleared":           "تم إفراغ السلة",
		"stock_clamped":          "تم تصحيح المخزون إلى صفر للمنتجات التالية",
		"confirm_required":       "التأكيد مطلوب لهذه العملية",
		"data_reset":             "تمت إعادة تعيين بيانات التطبيق",
		"describe_failed":        "فشل إنشاء الوصف. حاول مرة أخرى.",
		"saved":                  "تم الحفظ",
		"deleted":                "تم الحذف",
		"no_customer":            "بدون عميل",
	},
	"fr": {
		"invalid_data":           "Données invalides",
		"product_not_found":      "Produit introuvable",
		"customer_not_found":     "Client introuvable",
		"supplier_not_found":     "Fournisseur introuvable",
		"sale_not_found":         "Vente introuvable",
		"empty_cart":             "Le panier est vide",
		"sale_already_completed": "Vente déjà terminée, commencez une nouvelle vente",
		"invalid_payment_method": "Mode de paiement invalide",
		"sale_successful":        "Vente réalisée avec succès",
		"cart_cleared":           "Panier vidé",
		"stock_clamped":          "Stock ramené à zéro pour les produits suivants",
		"confirm_required":       "Confirmation requise pour cette opération",
		"data_reset":             "Données de l'application réinitialisées",
		"describe_failed":        "Échec de la génération de la description. Veuillez réessayer.",
		"saved":                  "Enregistré",
		"deleted":                "Supprimé",
		"no_customer":            "Sans client",
	},
}

// DetectLanguage extrai o idioma da interface de um cabeçalho
// Accept-Language. Idioma desconhecido ou ausente cai no padrão.
func DetectLanguage(acceptLanguage string) string {
	first := strings.TrimSpace(strings.Split(acceptLanguage, ",")[0])
	if i := strings.IndexAny(first, "-;"); i >= 0 {
		first = first[:i]
	}
	first = strings.ToLower(first)
	if _, ok := translations[first]; ok {
		return first
	}
	return DefaultLanguage
}

// T traduz um código de mensagem para o idioma pedido. Idioma sem a
// mensagem cai para o idioma padrão; código desconhecido volta como está.
func T(lang, code string) string {
	if messages, ok := translations[lang]; ok {
		if msg, ok := messages[code]; ok {
			return msg
		}
	}
	if msg, ok := translations[DefaultLanguage][code]; ok {
		return msg
	}
	return code
}
