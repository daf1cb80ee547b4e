package webi18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for _, entry := range messageCatalog {
		_ = message.SetString(language.English, entry.key, entry.en)
		_ = message.SetString(language.Russian, entry.key, entry.ru)
	}
}

type catalogEntry struct {
	key string
	en  string
	ru  string
}

var messageCatalog = []catalogEntry{
	{"nav.home", "Home", "Главная"},
	{"nav.profile", "Profile", "Профиль"},
	{"nav.resume", "Resume", "Резюме"},
	{"nav.login", "Sign in", "Войти"},
	{"nav.logout", "Sign out", "Выйти"},
	{"nav.register", "Register", "Регистрация"},

	{"timeline.title", "Timeline", "Лента"},
	{"timeline.post_placeholder", "What's on your mind?", "Что у вас нового?"},
	{"timeline.submit", "Post", "Опубликовать"},
	{"timeline.newer", "Newer posts", "Более новые"},
	{"timeline.older", "Older posts", "Более старые"},
	{"timeline.empty", "No posts yet.", "Пока нет публикаций."},
	{"timeline.post_created", "Your post is now live!", "Ваш пост опубликован!"},

	{"login.title", "Sign in", "Вход"},
	{"login.username", "Username", "Имя пользователя"},
	{"login.password", "Password", "Пароль"},
	{"login.remember", "Remember me", "Запомнить меня"},
	{"login.submit", "Sign in", "Войти"},
	{"login.failed", "Invalid username or password.", "Неверное имя пользователя или пароль."},
	{"login.welcome", "Welcome back, %s!", "С возвращением, %s!"},

	{"register.title", "Register", "Регистрация"},
	{"register.email", "Email", "Электронная почта"},
	{"register.password_confirm", "Repeat password", "Повторите пароль"},
	{"register.submit", "Create account", "Создать аккаунт"},
	{"register.done", "Registration complete, please sign in.", "Регистрация завершена, войдите в систему."},

	{"logout.done", "You have been signed out.", "Вы вышли из системы."},

	{"profile.title", "Profile of %s", "Профиль %s"},
	{"profile.followers", "%d followers", "Подписчиков: %d"},
	{"profile.following", "%d following", "Подписок: %d"},
	{"profile.last_seen", "Last seen: %s", "Последний визит: %s"},
	{"profile.follow", "Follow", "Подписаться"},
	{"profile.unfollow", "Unfollow", "Отписаться"},
	{"profile.edit", "Edit profile", "Редактировать профиль"},
	{"profile.view_resume", "View resume", "Посмотреть резюме"},
	{"profile.own_posts", "Posts", "Публикации"},
	{"profile.feed", "Feed", "Лента"},
	{"profile.followed", "You are now following %s.", "Вы подписались на %s."},
	{"profile.unfollowed", "You are no longer following %s.", "Вы отписались от %s."},
	{"profile.self_follow", "You cannot follow yourself.", "Нельзя подписаться на самого себя."},
	{"profile.user_not_found", "User not found.", "Пользователь не найден."},
	{"profile.updated", "Your changes have been saved.", "Изменения сохранены."},

	{"edit_profile.title", "Edit profile", "Редактирование профиля"},
	{"edit_profile.bio", "About me", "О себе"},
	{"edit_profile.submit", "Save", "Сохранить"},

	{"resume.title", "Resume", "Резюме"},
	{"resume.profile_section", "Basic information", "Основная информация"},
	{"resume.experience_section", "Work experience", "Опыт работы"},
	{"resume.education_section", "Education", "Образование"},
	{"resume.courses_section", "Additional education", "Дополнительное образование"},
	{"resume.first_name", "First name", "Имя"},
	{"resume.surname", "Surname", "Фамилия"},
	{"resume.patronymic", "Patronymic", "Отчество"},
	{"resume.date_of_birth", "Date of birth", "Дата рождения"},
	{"resume.gender", "Gender", "Пол"},
	{"resume.city", "City", "Город"},
	{"resume.phone", "Phone", "Телефон"},
	{"resume.contact_email", "Contact email", "Контактная почта"},
	{"resume.social_link", "Social link", "Ссылка на соцсеть"},
	{"resume.desired_position", "Desired position", "Желаемая должность"},
	{"resume.professional_area", "Professional area", "Профессиональная область"},
	{"resume.salary", "Salary expectation", "Ожидаемая зарплата"},
	{"resume.employment", "Employment", "Занятость"},
	{"resume.work_schedule", "Work schedule", "График работы"},
	{"resume.about_me", "About me", "О себе"},
	{"resume.key_skills", "Key skills", "Ключевые навыки"},
	{"resume.languages", "Languages", "Знание языков"},
	{"resume.citizenship", "Citizenship", "Гражданство"},
	{"resume.organization", "Organization", "Организация"},
	{"resume.region", "Region", "Регион"},
	{"resume.company_field", "Company field", "Сфера деятельности компании"},
	{"resume.position", "Position", "Должность"},
	{"resume.responsibilities", "Responsibilities", "Обязанности"},
	{"resume.started_at", "Start of work", "Начало работы"},
	{"resume.ended_at", "End of work", "Окончание работы"},
	{"resume.level", "Education level", "Уровень образования"},
	{"resume.institution", "Institution", "Учебное заведение"},
	{"resume.faculty", "Faculty", "Факультет"},
	{"resume.specialization", "Specialization", "Специализация"},
	{"resume.completion_year", "Year of completion", "Год окончания"},
	{"resume.comment", "Comment", "Комментарий"},
	{"resume.add_entry", "Add entry", "Добавить запись"},
	{"resume.edit_entry", "Edit", "Редактировать"},
	{"resume.save", "Save", "Сохранить"},
	{"resume.saved", "Resume section saved.", "Раздел резюме сохранён."},
	{"resume.empty_section", "No entries yet.", "Записей пока нет."},
	{"resume.title_for", "Resume of %s", "Резюме %s"},
	{"resume.none", "This user has not filled in a resume yet.", "Этот пользователь ещё не заполнил резюме."},

	{"form.username_required", "Username is required.", "Укажите имя пользователя."},
	{"form.username_invalid", "Username must start with a letter and use only latin letters, digits, dots, dashes, or underscores.", "Имя пользователя должно начинаться с буквы и содержать только латинские буквы, цифры, точки, дефисы или подчёркивания."},
	{"form.email_invalid", "Enter a valid email address.", "Введите корректный адрес электронной почты."},
	{"form.password_weak", "Password must be at least 8 characters.", "Пароль должен содержать не менее 8 символов."},
	{"form.password_mismatch", "Passwords do not match.", "Пароли не совпадают."},
	{"form.username_taken", "This username is already taken.", "Это имя пользователя уже занято."},
	{"form.email_taken", "This email is already registered.", "Эта почта уже зарегистрирована."},
	{"form.bio_too_long", "About me must be at most 140 characters.", "Раздел «О себе» должен быть не длиннее 140 символов."},
	{"form.post_empty", "Post cannot be empty.", "Пост не может быть пустым."},
	{"form.post_too_long", "Post must be at most 500 characters.", "Пост должен быть не длиннее 500 символов."},
	{"form.field_required", "Please fill in the required fields.", "Заполните обязательные поля."},
	{"form.field_too_long", "One of the fields is too long.", "Одно из полей слишком длинное."},

	{"error.bad_request", "The form contains errors.", "Форма содержит ошибки."},
	{"error.not_found", "Page not found.", "Страница не найдена."},
	{"error.unauthorized", "Please sign in to continue.", "Войдите, чтобы продолжить."},
	{"error.internal", "Something went wrong. Please try again.", "Что-то пошло не так. Попробуйте ещё раз."},
}
