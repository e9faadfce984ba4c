// services/question_bank.go
package services

import "github.com/mafalia/teranga-network/models"

// QuestionBank returns the certification exam questions. Content mirrors the
// partner training material; answers stay server-side.
func QuestionBank() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID:       1,
			Category: "Vision Mafalia et infrastructure numérique",
			Question: "Mafalia est avant tout",
			Options: []models.QuizOption{
				{ID: "A", Text: "Une application de caisse"},
				{ID: "B", Text: "Une infrastructure numérique pour les commerces africains"},
				{ID: "C", Text: "Une banque"},
				{ID: "D", Text: "Une application de livraison"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       2,
			Category: "Vision Mafalia et infrastructure numérique",
			Question: "Le rôle principal de Mafalia dans un commerce est de",
			Options: []models.QuizOption{
				{ID: "A", Text: "Remplacer le personnel"},
				{ID: "B", Text: "Centraliser les opérations et structurer les données"},
				{ID: "C", Text: "Augmenter les charges"},
				{ID: "D", Text: "Imposer des process complexes"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       3,
			Category: "Vision Mafalia et infrastructure numérique",
			Question: "L'approche Mafalia repose sur",
			Options: []models.QuizOption{
				{ID: "A", Text: "La technologie seule"},
				{ID: "B", Text: "La donnée, l'IA et l'accompagnement métier"},
				{ID: "C", Text: "Le matériel uniquement"},
				{ID: "D", Text: "Le marketing"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       4,
			Category: "Vision Mafalia et infrastructure numérique",
			Question: "Mafalia permet une prise de décision dite éclairée parce que",
			Options: []models.QuizOption{
				{ID: "A", Text: "Les rapports sont manuels"},
				{ID: "B", Text: "Les données sont centralisées et analysées par l'IA"},
				{ID: "C", Text: "Le client devine"},
				{ID: "D", Text: "Les décisions sont imposées"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       5,
			Category: "Segmentation des offres Mafalia",
			Question: "Mafalia Restaurants Hotels Fast Foods s'adresse principalement à",
			Options: []models.QuizOption{
				{ID: "A", Text: "L'industrie lourde"},
				{ID: "B", Text: "Les établissements de restauration et d'hôtellerie"},
				{ID: "C", Text: "Les administrations"},
				{ID: "D", Text: "Les particuliers"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       6,
			Category: "Segmentation des offres Mafalia",
			Question: "Pour un restaurant ou fast food, Mafalia permet notamment",
			Options: []models.QuizOption{
				{ID: "A", Text: "Gérer les menus, commandes, stocks et clients"},
				{ID: "B", Text: "Faire uniquement la comptabilité"},
				{ID: "C", Text: "Gérer la paie"},
				{ID: "D", Text: "Remplacer le chef"},
			},
			CorrectAnswer: "A",
		},
		{
			ID:       7,
			Category: "Rôle du partenaire Teranga",
			Question: "Le partenaire Teranga a pour mission principale de",
			Options: []models.QuizOption{
				{ID: "A", Text: "Vendre du matériel informatique"},
				{ID: "B", Text: "Enrôler et accompagner les commerces sur Mafalia"},
				{ID: "C", Text: "Former les développeurs"},
				{ID: "D", Text: "Gérer les serveurs"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       8,
			Category: "Rôle du partenaire Teranga",
			Question: "Les commissions du partenaire deviennent disponibles",
			Options: []models.QuizOption{
				{ID: "A", Text: "Immédiatement à l'enrôlement"},
				{ID: "B", Text: "Après validation du paiement du client"},
				{ID: "C", Text: "Jamais"},
				{ID: "D", Text: "Après un an"},
			},
			CorrectAnswer: "B",
		},
		{
			ID:       9,
			Category: "Rôle du partenaire Teranga",
			Question: "Le montant minimum d'un retrait de commission est de",
			Options: []models.QuizOption{
				{ID: "A", Text: "5 000 FCFA"},
				{ID: "B", Text: "10 000 FCFA"},
				{ID: "C", Text: "25 000 FCFA"},
				{ID: "D", Text: "100 000 FCFA"},
			},
			CorrectAnswer: "C",
		},
		{
			ID:       10,
			Category: "Rôle du partenaire Teranga",
			Question: "Un client de type commercia est",
			Options: []models.QuizOption{
				{ID: "A", Text: "Un particulier"},
				{ID: "B", Text: "Un commerce ou une entreprise"},
				{ID: "C", Text: "Un autre partenaire"},
				{ID: "D", Text: "Un employé Mafalia"},
			},
			CorrectAnswer: "B",
		},
	}
}
