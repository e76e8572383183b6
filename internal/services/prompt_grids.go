package services

const scoringGridsEN = `
MANDATORY SCORING PROCESS (apply in order for EACH criterion):
STEP 1: Write your analysis of the criterion (strengths, weaknesses).
STEP 2: Reread it and identify the dominant sentiment:
  - "excellent", "perfect", "remarkable", "highly professional" -> score between 85 and 95
  - "good", "solid", "well done", "coherent" -> score between 70 and 85
  - "decent", "acceptable", "passable", "basic" -> score between 45 and 65
  - "weak", "lacking", "absent", "problem" -> score below 45
STEP 3: Assign the score STRICTLY following the correspondence above. No "safe" scores around 70.

SCORING GRIDS:

PROFILE PHOTO (if provided):
- 0-20: blurry, badly framed or unprofessional (selfie, vacation or cropped group photo)
- 20-40: decent but not optimized (lighting, distracting background, framing)
- 40-55: basic professional photo, generic
- 55-70: polished professional photo (lighting, smile, neutral background, suitable attire)
- 70-85: very good photo, high quality, conveys confidence
- 85-95: exceptional, studio quality, consistent with positioning, memorable

BANNER (if provided):
- 0-20: default LinkedIn banner or unrelated image
- 20-40: vaguely related image, no clear message, poor quality
- 40-55: custom banner but hard to read or amateur design
- 55-70: clear message consistent with positioning
- 70-85: visible value proposition, polished design
- 85-95: compelling value proposition, professional design, call to action

HEADLINE:
- 0-20: bare job title
- 20-40: job title and company, no value proposition
- 40-60: descriptive but generic, few specific keywords
- 60-80: clear value proposition, keywords relevant to the goal
- 80-90: optimized and differentiating, strategic keywords
- 90-95: tailored to the goal, memorable, unique value proposition

SUMMARY (ABOUT):
- 0-20: missing or one or two vague sentences
- 20-40: copied resume, no structure or storytelling
- 40-60: structured but generic, no personality or call to action
- 60-80: storytelling, clear structure, keywords, call to action
- 80-90: strong hook, quantified results, clear call to action
- 90-95: memorable hook, captivating story, precise results, aligned with the goal

EXPERIENCE:
- 0-20: none or titles without descriptions
- 20-40: vague task lists without results
- 40-60: responsibilities with few quantified results
- 60-80: quantified results, logical progression, keywords
- 80-90: measurable impact, precise metrics, storytelling per role
- 90-95: remarkable measurable impact, aligned with the goal

KEY SKILLS:
The LinkedIn PDF only shows the 3 key skills highlighted by the user. Evaluate ONLY these 3 skills and NEVER suggest adding more.
- 0-20: none or irrelevant to the goal
- 20-40: vague or generic ("Management", "Communication")
- 40-55: acceptable but not optimal for the goal
- 55-70: relevant but could be more specific
- 70-85: well chosen, specific, consistent with positioning
- 85-95: strategic and differentiating, the 3 skills tell one story
ALWAYS end the actions of the "Key Skills" criterion with this exact line: "💡 Consider requesting recommendations from your former colleagues and managers - they significantly strengthen your credibility and visibility with recruiters and prospects."

OVERALL COHERENCE:
- 0-20: disjointed profile, goal impossible to guess
- 20-40: contradictory messages between sections
- 40-60: positioning can be guessed but is not obvious
- 60-80: all sections tell the same story
- 80-90: each section reinforces the others
- 90-95: goal immediately clear and memorable

EXPECTED DISTRIBUTION: about 15% of profiles score 0-30, 35% score 30-50, 30% score 50-70, 15% score 70-85 and 5% above 85. Scores clustered around 40-60 for every criterion mean you are too conservative.

NEVER recommend adding skills, requesting endorsements, or anything based on information that is not in the provided PDF and visuals. Recommendations are not visible in the PDF and must not appear in the roadmap.

An average profile should score between 35 and 55 on most criteria.`

const scoringGridsFR = `
PROCESSUS DE NOTATION OBLIGATOIRE (dans l'ordre, pour CHAQUE critère) :
ÉTAPE 1 : Rédige ton analyse du critère (points forts, points faibles).
ÉTAPE 2 : Relis-la et identifie le sentiment dominant :
  - "excellent", "parfait", "remarquable", "très professionnel" -> score entre 85 et 95
  - "bon", "solide", "bien fait", "cohérent" -> score entre 70 et 85
  - "correct", "acceptable", "passable", "basique" -> score entre 45 et 65
  - "faible", "manque", "absent", "problème" -> score en dessous de 45
ÉTAPE 3 : Attribue le score en respectant STRICTEMENT cette correspondance. Pas de score "safe" autour de 70.

GRILLES DE NOTATION :

PHOTO DE PROFIL (si fournie) :
- 0-20 : floue, mal cadrée ou non professionnelle (selfie, vacances, photo de groupe recadrée)
- 20-40 : correcte mais pas optimisée (éclairage, arrière-plan, cadrage)
- 40-55 : photo professionnelle basique, générique
- 55-70 : photo professionnelle soignée (éclairage, sourire, arrière-plan neutre, tenue adaptée)
- 70-85 : très bonne photo, qualité élevée, transmet confiance
- 85-95 : exceptionnelle, qualité studio, cohérente avec le positionnement, mémorable

BANNIÈRE (si fournie) :
- 0-20 : bannière par défaut ou image sans rapport
- 20-40 : image vaguement liée, pas de message clair, qualité médiocre
- 40-55 : personnalisée mais peu lisible ou design amateur
- 55-70 : message clair, cohérent avec le positionnement
- 70-85 : proposition de valeur visible, design soigné
- 85-95 : proposition de valeur percutante, design professionnel, appel à l'action

TITRE (HEADLINE) :
- 0-20 : simple intitulé de poste
- 20-40 : intitulé et entreprise, sans proposition de valeur
- 40-60 : descriptif mais générique, peu de mots-clés
- 60-80 : proposition de valeur claire, mots-clés pertinents pour l'objectif
- 80-90 : optimisé et différenciant, mots-clés stratégiques
- 90-95 : parfaitement adapté à l'objectif, mémorable, proposition de valeur unique

RÉSUMÉ (ABOUT) :
- 0-20 : absent ou une à deux phrases vagues
- 20-40 : CV recopié, sans structure ni storytelling
- 40-60 : structuré mais générique, sans personnalité ni appel à l'action
- 60-80 : storytelling, structure claire, mots-clés, appel à l'action
- 80-90 : accroche forte, résultats chiffrés, appel à l'action clair
- 90-95 : accroche mémorable, histoire captivante, résultats précis, aligné avec l'objectif

EXPÉRIENCES :
- 0-20 : absentes ou intitulés sans description
- 20-40 : listes de tâches vagues sans résultats
- 40-60 : responsabilités avec peu de résultats chiffrés
- 60-80 : résultats chiffrés, progression logique, mots-clés
- 80-90 : impacts mesurables, métriques précises, storytelling par expérience
- 90-95 : impacts remarquables, alignés avec l'objectif

COMPÉTENCES CLÉS :
Le PDF LinkedIn n'affiche que les 3 compétences clés mises en avant. Évalue UNIQUEMENT ces 3 compétences et ne suggère JAMAIS d'en ajouter.
- 0-20 : aucune ou hors sujet
- 20-40 : vagues ou génériques ("Management", "Communication")
- 40-55 : acceptables mais pas optimales pour l'objectif
- 55-70 : pertinentes mais pourraient être plus spécifiques
- 70-85 : bien choisies, spécifiques, cohérentes avec le positionnement
- 85-95 : stratégiques et différenciantes, les 3 compétences racontent une histoire
Termine TOUJOURS les actions du critère "Compétences clés" par cette ligne exacte : "💡 Pensez à solliciter des recommandations auprès de vos anciens collègues et managers - elles renforcent considérablement votre crédibilité et votre visibilité auprès des recruteurs et prospects."

COHÉRENCE GLOBALE :
- 0-20 : profil décousu, objectif impossible à deviner
- 20-40 : messages contradictoires entre sections
- 40-60 : le positionnement se devine mais n'est pas évident
- 60-80 : toutes les sections racontent la même histoire
- 80-90 : chaque section renforce les autres
- 90-95 : objectif immédiatement clair et mémorable

DISTRIBUTION ATTENDUE : environ 15 % des profils entre 0 et 30, 35 % entre 30 et 50, 30 % entre 50 et 70, 15 % entre 70 et 85 et 5 % au-dessus de 85. Des scores concentrés entre 40 et 60 pour tous les critères signifient que tu es trop conservateur.

Ne recommande JAMAIS d'ajouter des compétences, de demander des validations, ni quoi que ce soit basé sur des informations absentes du PDF et des visuels fournis. Les recommandations ne sont pas visibles dans le PDF et ne doivent pas figurer dans la feuille de route.

Un profil moyen devrait obtenir entre 35 et 55 sur la plupart des critères.`
