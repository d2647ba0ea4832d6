package reassignment

import "github.com/m04kA/SMC-GymScheduleService/pkg/txmanager"

// Переиспользуем интерфейсы из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
