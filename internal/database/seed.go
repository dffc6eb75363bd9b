package database

import (
	"fmt"

	"gorm.io/gorm"
)

// catalogQuestions is the seed checklist, built from ISO/IEC 27001:2022
// Anexo A, the Ley Marco de Ciberseguridad 21.663 and the Ley 21.096 de
// Protección de Datos Personales. The catalog is curated externally and is
// append-only once assessments reference it.
var catalogQuestions = []Question{
	{
		Domain:         "A.5 Políticas de Seguridad",
		Subdomain:      "A.5.1 Dirección de la Gestión para la Seguridad de la Información",
		Text:           "¿La organización cuenta con una Política de Seguridad de la Información formalmente aprobada por la alta dirección?",
		Description:    "Debe existir un documento formal que establezca el compromiso de la alta dirección con la seguridad de la información.",
		Weight:         5,
		DisplayOrder:   1,
		LegalReference: "ISO 27001:2022 A.5.1 | Art. 4 Ley 21.663",
	},
	{
		Domain:         "A.5 Políticas de Seguridad",
		Subdomain:      "A.5.1 Dirección de la Gestión para la Seguridad de la Información",
		Text:           "¿La Política de Seguridad se revisa y actualiza periódicamente (al menos anualmente)?",
		Description:    "Las políticas deben mantenerse actualizadas frente a cambios en el negocio, tecnología y amenazas.",
		Weight:         3,
		DisplayOrder:   2,
		LegalReference: "ISO 27001:2022 A.5.1",
	},
	{
		Domain:         "A.6 Organización de la Seguridad",
		Subdomain:      "A.6.1 Estructura Organizacional",
		Text:           "¿Existe un responsable designado para la seguridad de la información (CISO o equivalente)?",
		Description:    "Debe haber una persona con autoridad y recursos para coordinar la seguridad de la información.",
		Weight:         5,
		DisplayOrder:   3,
		LegalReference: "ISO 27001:2022 A.6.1 | Art. 5 Ley 21.663",
	},
	{
		Domain:         "A.6 Organización de la Seguridad",
		Subdomain:      "A.6.2 Dispositivos Móviles y Teletrabajo",
		Text:           "¿Existen políticas y controles específicos para el uso de dispositivos móviles y teletrabajo?",
		Description:    "Incluye BYOD, acceso remoto, VPN, y seguridad de dispositivos fuera de las instalaciones.",
		Weight:         4,
		DisplayOrder:   4,
		LegalReference: "ISO 27001:2022 A.6.7",
	},
	{
		Domain:         "A.8 Gestión de Activos",
		Subdomain:      "A.8.1 Inventario de Activos",
		Text:           "¿La organización mantiene un inventario actualizado de todos los activos de información (hardware, software, datos)?",
		Description:    "El inventario debe incluir propietarios, clasificación y ubicación de los activos.",
		Weight:         5,
		DisplayOrder:   5,
		LegalReference: "ISO 27001:2022 A.5.9 | Art. 6 Ley 21.663",
	},
	{
		Domain:         "A.8 Gestión de Activos",
		Subdomain:      "A.8.2 Clasificación de la Información",
		Text:           "¿Se clasifican los activos de información según su criticidad y sensibilidad (ej: Público, Interno, Confidencial, Restringido)?",
		Description:    "La clasificación permite aplicar controles de seguridad proporcionales al valor de la información.",
		Weight:         4,
		DisplayOrder:   6,
		LegalReference: "ISO 27001:2022 A.5.12",
	},
	{
		Domain:         "A.8 Gestión de Activos",
		Subdomain:      "A.8.3 Manejo de Medios",
		Text:           "¿Existe un procedimiento seguro para la eliminación o reutilización de medios de almacenamiento?",
		Description:    "Incluye borrado seguro de discos, destrucción de medios físicos y sanitización de equipos.",
		Weight:         4,
		DisplayOrder:   7,
		LegalReference: "ISO 27001:2022 A.7.14",
	},
	{
		Domain:         "A.9 Control de Acceso",
		Subdomain:      "A.9.1 Política de Control de Acceso",
		Text:           "¿Existe una política formal de control de acceso basada en el principio de menor privilegio?",
		Description:    "Los usuarios deben tener únicamente los accesos necesarios para realizar sus funciones.",
		Weight:         5,
		DisplayOrder:   8,
		LegalReference: "ISO 27001:2022 A.5.15 | Art. 7 Ley 21.663",
	},
	{
		Domain:         "A.9 Control de Acceso",
		Subdomain:      "A.9.2 Gestión de Acceso de Usuarios",
		Text:           "¿Se realiza un proceso formal de alta, modificación y baja de usuarios en los sistemas?",
		Description:    "Debe existir un proceso documentado para gestionar el ciclo de vida de las cuentas de usuario.",
		Weight:         5,
		DisplayOrder:   9,
		LegalReference: "ISO 27001:2022 A.5.16",
	},
	{
		Domain:         "A.9 Control de Acceso",
		Subdomain:      "A.9.3 Autenticación de Usuarios",
		Text:           "¿Se implementa autenticación multifactor (MFA/2FA) para el acceso a sistemas críticos?",
		Description:    "MFA proporciona una capa adicional de seguridad más allá de las contraseñas.",
		Weight:         4,
		DisplayOrder:   10,
		LegalReference: "ISO 27001:2022 A.5.17",
	},
	{
		Domain:         "A.9 Control de Acceso",
		Subdomain:      "A.9.4 Revisión de Derechos de Acceso",
		Text:           "¿Se revisan periódicamente los derechos de acceso de los usuarios para verificar su vigencia?",
		Description:    "Las revisiones deben realizarse al menos trimestralmente para sistemas críticos.",
		Weight:         3,
		DisplayOrder:   11,
		LegalReference: "ISO 27001:2022 A.5.18",
	},
	{
		Domain:         "A.10 Criptografía",
		Subdomain:      "A.10.1 Controles Criptográficos",
		Text:           "¿Se utiliza cifrado para proteger información sensible en tránsito (ej: TLS/SSL, VPN)?",
		Description:    "Las comunicaciones que transportan información sensible deben estar cifradas.",
		Weight:         5,
		DisplayOrder:   12,
		LegalReference: "ISO 27001:2022 A.8.24 | Ley 21.096 Art. 9",
	},
	{
		Domain:         "A.10 Criptografía",
		Subdomain:      "A.10.1 Controles Criptográficos",
		Text:           "¿Se utiliza cifrado para proteger información sensible en reposo (bases de datos, backups, discos)?",
		Description:    "Los datos personales y críticos almacenados deben estar cifrados.",
		Weight:         4,
		DisplayOrder:   13,
		LegalReference: "ISO 27001:2022 A.8.24 | Ley 21.096 Art. 9",
	},
	{
		Domain:         "A.12 Seguridad en las Operaciones",
		Subdomain:      "A.12.1 Procedimientos Operacionales",
		Text:           "¿Existen procedimientos documentados para la operación y administración de los sistemas de información?",
		Description:    "Incluye procedimientos de backup, monitoreo, gestión de logs, etc.",
		Weight:         3,
		DisplayOrder:   14,
		LegalReference: "ISO 27001:2022 A.5.37",
	},
	{
		Domain:         "A.12 Seguridad en las Operaciones",
		Subdomain:      "A.12.2 Protección contra Malware",
		Text:           "¿Se utilizan soluciones antimalware actualizadas en todos los endpoints y servidores?",
		Description:    "Debe existir protección activa contra virus, ransomware y otro software malicioso.",
		Weight:         5,
		DisplayOrder:   15,
		LegalReference: "ISO 27001:2022 A.8.7",
	},
	{
		Domain:         "A.12 Seguridad en las Operaciones",
		Subdomain:      "A.12.3 Respaldos (Backups)",
		Text:           "¿Se realizan backups periódicos de la información crítica y se prueban las restauraciones?",
		Description:    "Los backups deben realizarse regularmente y las restauraciones deben probarse al menos semestralmente.",
		Weight:         5,
		DisplayOrder:   16,
		LegalReference: "ISO 27001:2022 A.8.13",
	},
	{
		Domain:         "A.12 Seguridad en las Operaciones",
		Subdomain:      "A.12.4 Registro y Monitoreo",
		Text:           "¿Se registran y monitorean los eventos de seguridad en sistemas críticos (logs de acceso, cambios, errores)?",
		Description:    "Los logs deben conservarse por al menos 90 días y revisarse periódicamente.",
		Weight:         4,
		DisplayOrder:   17,
		LegalReference: "ISO 27001:2022 A.8.15 | Art. 13 Ley 21.663",
	},
	{
		Domain:         "A.12 Seguridad en las Operaciones",
		Subdomain:      "A.12.6 Gestión de Vulnerabilidades Técnicas",
		Text:           "¿Se realiza gestión de parches de seguridad en sistemas operativos y aplicaciones de forma oportuna?",
		Description:    "Los parches críticos deben aplicarse dentro de los 30 días de su publicación.",
		Weight:         5,
		DisplayOrder:   18,
		LegalReference: "ISO 27001:2022 A.8.8",
	},
	{
		Domain:         "A.13 Seguridad en las Comunicaciones",
		Subdomain:      "A.13.1 Seguridad en Redes",
		Text:           "¿Se utilizan firewalls y segmentación de red para proteger los recursos de información?",
		Description:    "Las redes deben estar segmentadas (DMZ, servidores, usuarios) con controles de firewall.",
		Weight:         5,
		DisplayOrder:   19,
		LegalReference: "ISO 27001:2022 A.8.20",
	},
	{
		Domain:         "A.14 Desarrollo y Mantenimiento de Sistemas",
		Subdomain:      "A.14.2 Seguridad en el Desarrollo",
		Text:           "¿Se incluyen requisitos de seguridad en el ciclo de desarrollo de software (Secure SDLC)?",
		Description:    "La seguridad debe integrarse desde el diseño, no agregarse al final.",
		Weight:         3,
		DisplayOrder:   20,
		LegalReference: "ISO 27001:2022 A.8.25",
	},
	{
		Domain:         "A.16 Gestión de Incidentes",
		Subdomain:      "A.16.1 Respuesta a Incidentes",
		Text:           "¿Existe un procedimiento documentado para la detección, reporte y respuesta a incidentes de seguridad?",
		Description:    "Debe incluir roles, responsabilidades, canales de escalamiento y procedimientos de contención.",
		Weight:         5,
		DisplayOrder:   21,
		LegalReference: "ISO 27001:2022 A.5.24 | Art. 14 Ley 21.663",
	},
	{
		Domain:         "A.16 Gestión de Incidentes",
		Subdomain:      "A.16.1 Respuesta a Incidentes",
		Text:           "¿Se han definido y comunicado los plazos para notificar incidentes de ciberseguridad a las autoridades competentes?",
		Description:    "La Ley 21.663 establece plazos específicos para notificación de incidentes a la autoridad.",
		Weight:         5,
		DisplayOrder:   22,
		LegalReference: "Art. 15 Ley 21.663 (Notificación de Incidentes)",
	},
	{
		Domain:         "A.17 Continuidad del Negocio",
		Subdomain:      "A.17.1 Gestión de Continuidad",
		Text:           "¿Existe un Plan de Continuidad del Negocio (BCP) y/o Plan de Recuperación de Desastres (DRP)?",
		Description:    "Debe documentar cómo mantener o recuperar las operaciones críticas ante incidentes mayores.",
		Weight:         4,
		DisplayOrder:   23,
		LegalReference: "ISO 27001:2022 A.5.29",
	},
	{
		Domain:         "A.17 Continuidad del Negocio",
		Subdomain:      "A.17.1 Gestión de Continuidad",
		Text:           "¿Se prueban y actualizan periódicamente los planes de continuidad del negocio?",
		Description:    "Los planes deben probarse al menos anualmente mediante ejercicios o simulacros.",
		Weight:         3,
		DisplayOrder:   24,
		LegalReference: "ISO 27001:2022 A.5.30",
	},
	{
		Domain:         "A.18 Cumplimiento Legal y Contractual",
		Subdomain:      "A.18.1 Cumplimiento de Requisitos Legales",
		Text:           "¿La organización identifica y cumple con todos los requisitos legales aplicables en materia de protección de datos y ciberseguridad?",
		Description:    "Incluye Ley 21.663, Ley 21.096, y otras regulaciones sectoriales aplicables.",
		Weight:         5,
		DisplayOrder:   25,
		LegalReference: "ISO 27001:2022 A.5.31 | Ley 21.096 | Ley 21.663",
	},
	{
		Domain:         "A.18 Cumplimiento Legal y Contractual",
		Subdomain:      "A.18.1 Cumplimiento de Requisitos Legales",
		Text:           "¿Se han implementado los derechos de los titulares de datos personales (ARCO: Acceso, Rectificación, Cancelación, Oposición)?",
		Description:    "Debe existir un proceso formal para que los ciudadanos ejerzan sus derechos sobre sus datos.",
		Weight:         4,
		DisplayOrder:   26,
		LegalReference: "Ley 21.096 Art. 12-16",
	},
	{
		Domain:         "A.7 Seguridad en Recursos Humanos",
		Subdomain:      "A.7.2 Capacitación y Concienciación",
		Text:           "¿Se imparte capacitación periódica en seguridad de la información y ciberseguridad a todos los empleados?",
		Description:    "La capacitación debe ser al menos anual y cubrir temas como phishing, manejo de contraseñas, etc.",
		Weight:         4,
		DisplayOrder:   27,
		LegalReference: "ISO 27001:2022 A.6.3 | Art. 8 Ley 21.663",
	},
	{
		Domain:         "A.5 Políticas de Seguridad",
		Subdomain:      "A.5.7 Gestión de Riesgos",
		Text:           "¿Se realiza una evaluación de riesgos de seguridad de la información de forma periódica (al menos anualmente)?",
		Description:    "La evaluación debe identificar amenazas, vulnerabilidades, impactos y definir tratamientos.",
		Weight:         5,
		DisplayOrder:   28,
		LegalReference: "ISO 27001:2022 Cláusula 6.1 | Art. 10 Ley 21.663",
	},
	{
		Domain:         "A.15 Relaciones con Proveedores",
		Subdomain:      "A.15.1 Seguridad en las Relaciones con Proveedores",
		Text:           "¿Se incluyen cláusulas de seguridad de la información en los contratos con terceros y proveedores?",
		Description:    "Los contratos deben especificar requisitos de seguridad, SLAs, auditorías y responsabilidades.",
		Weight:         4,
		DisplayOrder:   29,
		LegalReference: "ISO 27001:2022 A.5.19",
	},
	{
		Domain:         "A.15 Relaciones con Proveedores",
		Subdomain:      "A.15.2 Gestión de Servicios de Terceros",
		Text:           "¿Se monitorea y revisa el desempeño de seguridad de los proveedores críticos?",
		Description:    "Debe existir supervisión periódica del cumplimiento de seguridad por parte de proveedores.",
		Weight:         3,
		DisplayOrder:   30,
		LegalReference: "ISO 27001:2022 A.5.20",
	},
}

// SeedCatalog loads the question checklist if the catalog is still empty.
// Safe to run on every boot.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return nil
	}
	questions := make([]Question, len(catalogQuestions))
	copy(questions, catalogQuestions)
	if err := db.Create(&questions).Error; err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	return nil
}
